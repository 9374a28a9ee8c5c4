package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/vburojevic/moncov/internal/loader"
	"github.com/vburojevic/moncov/internal/output"
)

// CompletionCmd generates shell completions
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

const completionCommands = "report view config version completion"

// Run executes the completion command
func (c *CompletionCmd) Run(globals *Globals) error {
	formats := strings.Join(output.FormatNames(), " ")
	inputGlob := inputExtensionGlob()

	switch c.Shell {
	case "bash":
		return writeCompletion(globals.Stdout, bashCompletion, formats, inputGlob)
	case "zsh":
		return writeCompletion(globals.Stdout, zshCompletion, formats, inputGlob)
	case "fish":
		return writeCompletion(globals.Stdout, fishCompletion, formats, inputGlob)
	default:
		return fmt.Errorf("unsupported shell: %s", c.Shell)
	}
}

// inputExtensionGlob returns e.g. "json|csv|yaml|yml".
func inputExtensionGlob() string {
	exts := loader.Extensions()
	for i, e := range exts {
		exts[i] = strings.TrimPrefix(e, ".")
	}
	return strings.Join(exts, "|")
}

func writeCompletion(w io.Writer, tmpl, formats, inputGlob string) error {
	r := strings.NewReplacer(
		"@COMMANDS@", completionCommands,
		"@FORMATS@", formats,
		"@INPUTS@", inputGlob,
	)
	_, err := io.WriteString(w, r.Replace(tmpl))
	return err
}

const bashCompletion = `# moncov bash completion script
# Add to ~/.bashrc:
#   eval "$(moncov completion bash)"

_moncov_completions() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
        moncov)
            COMPREPLY=($(compgen -W "@COMMANDS@" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "@FORMATS@" -- "${cur}"))
            return
            ;;
        -i|--input)
            COMPREPLY=($(compgen -f -X '!*.@(@INPUTS@)' -- "${cur}"))
            return
            ;;
        -o|--output)
            COMPREPLY=($(compgen -f -X '!*.@(csv|md|markdown)' -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
    esac

    COMPREPLY=($(compgen -W "-i --input -f --format -o --output --system --exclude-system --component --exclude-monitor -q --quiet -v --verbose" -- "${cur}"))
}

shopt -s extglob
complete -F _moncov_completions moncov
`

const zshCompletion = `#compdef moncov
# moncov zsh completion script
# Add to ~/.zshrc:
#   eval "$(moncov completion zsh)"

_moncov() {
    _arguments \
        '1:command:(@COMMANDS@)' \
        '(-i --input)'{-i,--input}'[Monitor records file]:file:_files -g "*.(@INPUTS@)"' \
        '(-f --format)'{-f,--format}'[Stdout format]:format:(@FORMATS@)' \
        '(-o --output)'{-o,--output}'[Report file]:file:_files -g "*.(csv|md|markdown)"' \
        '*--system[Only include systems]:system:' \
        '*--exclude-system[Drop systems]:system:' \
        '*--component[Only include components]:component:' \
        '--exclude-monitor[Drop monitors matching regex]:regex:' \
        '(-q --quiet)'{-q,--quiet}'[Suppress status lines]' \
        '(-v --verbose)'{-v,--verbose}'[Debug output]'
}

compdef _moncov moncov
`

const fishCompletion = `# moncov fish completion script
# Save to ~/.config/fish/completions/moncov.fish

complete -c moncov -f -n '__fish_use_subcommand' -a '@COMMANDS@'
complete -c moncov -s i -l input -r -d 'Monitor records file'
complete -c moncov -s f -l format -x -a '@FORMATS@' -d 'Stdout format'
complete -c moncov -s o -l output -r -d 'Report file (.csv, .md)'
complete -c moncov -l system -x -d 'Only include systems'
complete -c moncov -l exclude-system -x -d 'Drop systems'
complete -c moncov -l component -x -d 'Only include components'
complete -c moncov -l exclude-monitor -x -d 'Drop monitors matching regex'
complete -c moncov -s q -l quiet -d 'Suppress status lines'
complete -c moncov -s v -l verbose -d 'Debug output'
`
