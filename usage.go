package argos

import (
	"fmt"
	"io"
	"strings"

	"github.com/kherven/argos/internal/scan"
)

// WriteUsage writes the one-line usage synopsis: required arguments appear
// as `--name <NAME>`, required exclusive groups as `<a | b | c>`, and
// `[options]` is noted whenever any optional argument exists.
func (p *Parser) WriteUsage(w io.Writer) {
	parts := []string{"Usage:", p.name}

	if p.hasOptional() {
		parts = append(parts, "[options]")
	}

	for _, spec := range p.specs {
		if spec.Required {
			parts = append(parts, fmt.Sprintf("--%s <%s>", spec.Name, placeholder(spec.Name)))
		}
	}

	for _, group := range p.groups {
		if group.Kind == scan.GroupExclusive && group.Required {
			parts = append(parts, "<"+strings.Join(group.Members, " | ")+">")
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

func (p *Parser) hasOptional() bool {
	for _, spec := range p.specs {
		if !spec.Required {
			return true
		}
	}

	return false
}

func placeholder(name string) string {
	return strings.ToUpper(name)
}
