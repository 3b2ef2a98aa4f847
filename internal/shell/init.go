package shell

import (
	"fmt"
	"io"
)

// WriteBashInit writes the bash shell integration script to the writer.
func WriteBashInit(w io.Writer) {
	fmt.Fprint(w, `# protocolctl shell integration
__protocolctl_prompt_hook() {
  eval "$(command protocolctl status --env 2>/dev/null)"
}

protocolctl_prompt_info() {
  command protocolctl status 2>/dev/null
}

if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__protocolctl_prompt_hook"
else
  PROMPT_COMMAND="__protocolctl_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command protocolctl completion bash 2>/dev/null)"
`)
}

// WriteZshInit writes the zsh shell integration script to the writer.
func WriteZshInit(w io.Writer) {
	fmt.Fprint(w, `# protocolctl shell integration
__protocolctl_prompt_hook() {
  eval "$(command protocolctl status --env 2>/dev/null)"
}

protocolctl_prompt_info() {
  command protocolctl status 2>/dev/null
}

autoload -Uz add-zsh-hook
add-zsh-hook precmd __protocolctl_prompt_hook

eval "$(command protocolctl completion zsh 2>/dev/null)"
`)
}

// WriteInit writes the integration script for the named shell.
func WriteInit(w io.Writer, shellName string) error {
	switch shellName {
	case "bash":
		WriteBashInit(w)
	case "zsh":
		WriteZshInit(w)
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh)", shellName)
	}
	return nil
}
