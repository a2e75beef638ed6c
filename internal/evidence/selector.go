package evidence

import (
	"fmt"

	"github.com/aetherhq/synthesis/pkg/models"
)

const (
	maxKeyEvidence  = 3
	excerptLimit    = 200
	impactBaseline  = 0.5
	impactScaledown = 0.6
)

// SelectKeyEvidence picks the chunks shown alongside a verdict: the
// first three in source order, with a bounded excerpt and an impact
// score centered on neutral relevance.
func SelectKeyEvidence(chunks []models.EvidenceChunk) []models.KeyEvidence {
	selected := make([]models.KeyEvidence, 0, maxKeyEvidence)

	for i, chunk := range chunks {
		if i >= maxKeyEvidence {
			break
		}

		id := chunk.ID
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}

		text := chunk.Text
		if len(text) > excerptLimit {
			text = text[:excerptLimit]
		}

		selected = append(selected, models.KeyEvidence{
			ChunkID:       id,
			Text:          text,
			Weight:        chunk.Relevance,
			UsedBy:        []string{"support", "oppose"},
			VerdictImpact: (chunk.Relevance - impactBaseline) * impactScaledown,
		})
	}

	return selected
}
