package argos

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kherven/argos/internal/scan"
)

// argPadding accounts for the dashes, placeholder brackets and column gap
// around an argument name when computing help alignment.
const argPadding = 9

// WriteHelp writes the full help page: the program description, the usage
// synopsis, a column-aligned option listing with a synthesized help row,
// and a prose trailer describing each constraint group.
func (p *Parser) WriteHelp(w io.Writer) {
	if w == nil {
		return
	}

	buf := bufio.NewWriter(w)
	heading := color.New(color.Bold)

	fmt.Fprintln(buf, p.description)
	p.WriteUsage(buf)

	fmt.Fprintf(buf, "\n%s\n", heading.Sprint("options:"))
	fmt.Fprintln(buf, "-------")

	width := p.alignmentWidth()
	for _, spec := range p.specs {
		fmt.Fprintf(buf, "%s --%-*s %s\n",
			shortColumn(spec.Alias), width, usageColumn(spec), spec.Usage)
	}
	fmt.Fprintf(buf, "-h, --%-*s Print this help message\n", width, "help")

	if len(p.groups) > 0 {
		fmt.Fprintf(buf, "\n%s\n", heading.Sprint("constraints:"))
		fmt.Fprintln(buf, "-----------")

		for _, group := range p.groups {
			fmt.Fprintf(buf, "%s\n", groupProse(group))
		}
	}

	buf.Flush()
}

// alignmentWidth computes the width of the option column from the longest
// registered name. Boolean arguments print their name once, valued ones
// repeat it as an uppercase placeholder.
func (p *Parser) alignmentWidth() int {
	width := len("help") + argPadding

	for _, spec := range p.specs {
		var need int
		if spec.Kind == scan.KindBoolean {
			need = len(spec.Name) + argPadding
		} else {
			need = len(spec.Name)*2 + argPadding
		}

		if need > width {
			width = need
		}
	}

	return width
}

func usageColumn(spec scan.Spec) string {
	if spec.Kind == scan.KindBoolean {
		return spec.Name
	}

	return fmt.Sprintf("%s <%s>", spec.Name, placeholder(spec.Name))
}

func shortColumn(alias rune) string {
	if alias == 0 {
		return "   "
	}

	return fmt.Sprintf("-%c,", alias)
}

// groupProse renders one constraint group as an explanatory sentence.
func groupProse(group scan.Group) string {
	members := proseList(group.Members)

	switch group.Kind {
	case scan.GroupExclusive:
		if group.Required {
			return fmt.Sprintf("exactly one of %s must be given", members)
		}

		return fmt.Sprintf("at most one of %s may be given", members)

	case scan.GroupConditional:
		sentence := fmt.Sprintf("%s requires one of %s", members, proseList(group.Parents))
		if group.Required {
			sentence += "; at least one of " + members + " is required"
		}

		return sentence
	}

	return ""
}

func proseList(names []string) string {
	flagged := make([]string, len(names))
	for i, name := range names {
		flagged[i] = "--" + name
	}

	return strings.Join(flagged, ", ")
}
