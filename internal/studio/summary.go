package studio

import (
	"fmt"
	"strings"

	"voiceshowcase/internal/domain/voice"
)

// Summary describes the composition of the voice table. It is built from the
// static catalogue only and never reflects how a run went.
func Summary(specs []voice.Spec) string {
	type group struct {
		flag       string
		speaker    string
		variations []string
	}

	var order []*group
	bySpeaker := make(map[string]*group)
	for _, s := range specs {
		g, ok := bySpeaker[s.Speaker]
		if !ok {
			g = &group{flag: s.Flag, speaker: s.Speaker}
			bySpeaker[s.Speaker] = g
			order = append(order, g)
		}
		g.variations = append(g.variations, s.Variation)
	}

	var b strings.Builder
	b.WriteString("📊 SHOWCASE SUMMARY:\n")
	for _, g := range order {
		noun := "variations"
		if len(g.variations) == 1 {
			noun = "variation"
		}
		fmt.Fprintf(&b, "%s %s: %d %s (%s)\n", g.flag, g.speaker, len(g.variations), noun, strings.Join(g.variations, ", "))
	}
	fmt.Fprintf(&b, "📈 Total: %d voice samples showcasing different styles and use cases\n", len(specs))
	b.WriteString("✅ All based on verified voice characteristics\n")
	return b.String()
}
