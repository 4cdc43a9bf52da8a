package content

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source names where directory content comes from. Files are YAML documents;
// Store is an optional SQLite database read after every file.
type Source struct {
	Files []string
	Store string
}

func (s Source) Empty() bool { return len(s.Files) == 0 && s.Store == "" }

// Load reads every source concurrently and merges the results in source
// order: files first, then the store. The merged directory is validated.
func Load(ctx context.Context, src Source) (*Directory, error) {
	parts := make([]*Directory, len(src.Files)+1)

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range src.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := LoadFile(path)
			if err != nil {
				return err
			}
			parts[i] = d
			return nil
		})
	}
	if src.Store != "" {
		g.Go(func() error {
			store, err := OpenStore(src.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			d, err := store.Load(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Store, err)
			}
			parts[len(parts)-1] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	merged := NewDirectory()
	for _, d := range parts {
		if d == nil {
			continue
		}
		if err := merged.Merge(d); err != nil {
			return nil, fmt.Errorf("merge content: %w", err)
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	return merged, nil
}
