package farmer

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"furrow/internal/domain/world"
)

// Market trades one unit per request. Only the current season's seed is on
// sale; everything with a sell price can be sold back.
type Market struct {
	Tuning MarketTuning
}

type Trade struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
	Gold  int    `json:"gold"`
}

func (m Market) catalog() []string {
	names := make([]string, 0, len(m.Tuning.SellPrices)+4)
	for _, s := range world.Seasons() {
		names = append(names, s.SeedItem())
	}
	for item := range m.Tuning.SellPrices {
		names = append(names, item)
	}
	sort.Strings(names)
	return names
}

func normalizeItem(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// ResolveItem maps a loosely typed item name onto the catalog. "seed" means
// the current season's seed. Small typos are forgiven when exactly one
// catalog entry is closest.
func (m Market) ResolveItem(raw string, season world.Season) (string, error) {
	q := normalizeItem(raw)
	if q == "" {
		return "", &ItemMatchError{Query: raw, err: ErrUnknownItem}
	}
	if q == "seed" || q == "seeds" {
		return season.SeedItem(), nil
	}
	names := m.catalog()
	for _, name := range names {
		if name == q {
			return name, nil
		}
	}

	limit := typoLimit(len(q))
	if m.Tuning.MaxTypoDist > 0 && m.Tuning.MaxTypoDist < limit {
		limit = m.Tuning.MaxTypoDist
	}
	best, matches := limit+1, []string(nil)
	for _, name := range names {
		dist := levenshtein.ComputeDistance(q, name)
		switch {
		case dist < best:
			best, matches = dist, []string{name}
		case dist == best:
			matches = append(matches, name)
		}
	}
	switch {
	case len(matches) == 1:
		return matches[0], nil
	case len(matches) > 1:
		return "", &ItemMatchError{Query: raw, Candidates: matches, err: ErrAmbiguousItem}
	default:
		return "", &ItemMatchError{Query: raw, err: ErrUnknownItem}
	}
}

func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Buy spends SeedPrice gold on one seed of the current season.
func (m Market) Buy(p *Player, item string, season world.Season) (Trade, error) {
	if item != season.SeedItem() {
		return Trade{}, ErrNotForSale
	}
	price := m.Tuning.SeedPrice
	if p.Gold < price {
		return Trade{}, &InsufficientResourceError{Resource: "gold", Need: price, Have: p.Gold}
	}
	p.Gold -= price
	p.AddItem(item, 1)
	return Trade{Item: item, Count: 1, Gold: -price}, nil
}

// Sell turns one unit of item into its listed price.
func (m Market) Sell(p *Player, item string) (Trade, error) {
	price, ok := m.Tuning.SellPrices[item]
	if !ok {
		return Trade{}, ErrNotForSale
	}
	if !p.ConsumeItem(item, 1) {
		return Trade{}, &InsufficientResourceError{Resource: item, Need: 1, Have: p.Count(item)}
	}
	p.Gold += price
	return Trade{Item: item, Count: -1, Gold: price}, nil
}
