package embedfiles

import _ "embed"

//go:embed docs/sample-config.yaml
var SampleConfig []byte
