package analysis

import (
	"sort"

	"github.com/jmcgarr/netpath/pkg/topology"
)

// Weights of the transit criticality score. Fixed constants: path volume
// dominates, pair diversity and node involvement refine the ranking.
//
//	score = 70 * (pathCount / maxPathCount)
//	      + 20 * 100 * (pairCount / (totalCountries * (totalCountries - 1)))
//	      + 10 * 100 * (transitNodeCount / totalNodeCount)
//
// clamped to [0, 100].
const (
	transitWeightPaths = 70.0
	transitWeightPairs = 20.0
	transitWeightNodes = 10.0
)

// TransitCountryImpact ranks one country by how often computed paths cross
// it without starting or ending there.
type TransitCountryImpact struct {
	Country string
	// PathCount is how many supplied paths traverse the country as a
	// non-endpoint (each path counted once, however many of its nodes
	// fall inside the country).
	PathCount int
	// Pairs maps each (source country, destination country) combination
	// the country serves as transit for to the number of such paths.
	Pairs map[CountryPair]int
	// TransitNodeCount is the number of distinct nodes inside the
	// country used as transit points.
	TransitNodeCount int
	// Score is the 0-100 criticality score.
	Score float64
}

// ScoreTransitCountries ranks intermediate countries across the supplied
// path set, descending by score. Only paths with at least three nodes and
// differing endpoint countries contribute, and a path's own endpoint
// countries never count as its transit. Countries with zero transit paths
// are omitted entirely rather than reported with a zero score.
func ScoreTransitCountries(nodes []topology.Node, paths []topology.Path) []TransitCountryImpact {
	countryOf := make(map[string]string, len(nodes))
	countries := make(map[string]bool)
	for _, n := range nodes {
		countryOf[n.ID] = n.Country
		countries[n.Country] = true
	}

	totalCountries := len(countries)
	totalNodes := len(nodes)

	type tally struct {
		paths        int
		pairs        map[CountryPair]int
		transitNodes map[string]bool
	}
	tallies := make(map[string]*tally)
	var order []string

	for _, p := range paths {
		if len(p.Nodes) < 3 {
			continue
		}
		srcCountry, srcOK := countryOf[p.Nodes[0]]
		dstCountry, dstOK := countryOf[p.Nodes[len(p.Nodes)-1]]
		if !srcOK || !dstOK || srcCountry == dstCountry {
			continue
		}
		pair := CountryPair{Source: srcCountry, Dest: dstCountry}

		seenOnPath := make(map[string]bool)
		for _, id := range p.Nodes[1 : len(p.Nodes)-1] {
			c, ok := countryOf[id]
			if !ok || c == srcCountry || c == dstCountry {
				continue
			}

			t := tallies[c]
			if t == nil {
				t = &tally{
					pairs:        make(map[CountryPair]int),
					transitNodes: make(map[string]bool),
				}
				tallies[c] = t
				order = append(order, c)
			}
			t.transitNodes[id] = true

			// Count the path and the pair once per transit country.
			if !seenOnPath[c] {
				seenOnPath[c] = true
				t.paths++
				t.pairs[pair]++
			}
		}
	}

	if len(tallies) == 0 {
		return nil
	}

	maxPaths := 0
	for _, t := range tallies {
		if t.paths > maxPaths {
			maxPaths = t.paths
		}
	}

	result := make([]TransitCountryImpact, 0, len(tallies))
	for _, c := range order {
		t := tallies[c]

		score := transitWeightPaths * float64(t.paths) / float64(maxPaths)
		if totalCountries > 1 {
			score += transitWeightPairs * 100 * float64(len(t.pairs)) /
				float64(totalCountries*(totalCountries-1))
		}
		if totalNodes > 0 {
			score += transitWeightNodes * 100 * float64(len(t.transitNodes)) / float64(totalNodes)
		}
		if score > 100 {
			score = 100
		}
		if score < 0 {
			score = 0
		}

		result = append(result, TransitCountryImpact{
			Country:          c,
			PathCount:        t.paths,
			Pairs:            t.pairs,
			TransitNodeCount: len(t.transitNodes),
			Score:            score,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		if result[i].PathCount != result[j].PathCount {
			return result[i].PathCount > result[j].PathCount
		}
		return result[i].Country < result[j].Country
	})

	return result
}
