// ABOUTME: Batch embedding in fixed-size concurrent groups
// ABOUTME: Each group runs in parallel and finishes before the next starts
package embedding

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/harper/vibe-memory/internal/models"
)

// DefaultBatchSize bounds concurrent embedding calls
const DefaultBatchSize = 10

// BatchGenerate embeds texts in groups of batchSize. The result has the
// same order and length as texts.
func BatchGenerate(ctx context.Context, gen Generator, texts []string, batchSize int) []models.Embedding {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	out := make([]models.Embedding, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				out[i] = gen.Generate(ctx, texts[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	return out
}
