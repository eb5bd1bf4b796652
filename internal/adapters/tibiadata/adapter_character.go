package tibiadata

import (
	"context"
	"log/slog"
	"sync"

	"guild-manager/internal/core/domain"
)

// FetchCharacter gets a single character's details, bypassing the cache.
func (a *Adapter) FetchCharacter(ctx context.Context, name string) (*domain.CharacterDetail, error) {
	char, err := a.client.GetCharacter(ctx, name)
	if err != nil {
		return nil, err
	}
	detail := a.mapCharacter(char)
	if detail != nil {
		a.detailCache.SetDefault(name, detail)
	}
	return detail, nil
}

// FetchCharacterDetails concurrently fetches details for a list of character
// names. A name that fails to resolve is logged and simply absent from the
// results; the caller decides how to degrade.
func (a *Adapter) FetchCharacterDetails(ctx context.Context, names []string) (chan *domain.CharacterDetail, error) {
	results := make(chan *domain.CharacterDetail, len(names))
	jobs := make(chan string, len(names))
	workerCount := a.config.WorkerPoolSize

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go a.worker(ctx, jobs, results, &wg)
	}

	go func() {
		defer close(results)
		wg.Wait()
	}()

	go func() {
		defer close(jobs)
		for _, name := range names {
			jobs <- name
		}
	}()

	return results, nil
}

func (a *Adapter) worker(ctx context.Context, jobs <-chan string, results chan<- *domain.CharacterDetail, wg *sync.WaitGroup) {
	defer wg.Done()
	for name := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			if cached, ok := a.detailCache.Get(name); ok {
				results <- cached.(*domain.CharacterDetail)
				continue
			}

			char, err := a.client.GetCharacter(ctx, name)
			if err != nil {
				slog.Warn("Failed to fetch character", "name", name, "error", err)
				continue
			}
			result := a.mapCharacter(char)
			if result != nil {
				a.detailCache.SetDefault(name, result)
				results <- result
			}
		}
	}
}
