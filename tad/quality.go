// SPDX-License-Identifier: MIT

package tad

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtad/matrix"
	"github.com/katalvlaran/lvtad/spectral"
)

// qualityFilter scores every domain with the mean silhouette width of its
// bins, computed over the dissimilarity of all bins assigned to a domain,
// and keeps the domains scoring above MinScore.
// groups[i] lists the bins of domains[i].
func (c caller) qualityFilter(domains []Domain, groups [][]int) ([]Domain, error) {
	if len(domains) == 0 {
		return domains, nil
	}

	var bins, labels []int
	for gi, g := range groups {
		bins = append(bins, g...)
		for range g {
			labels = append(labels, gi)
		}
	}
	dis, err := matrix.Dissimilarity(c.m.Select(bins))
	if err != nil {
		return nil, fmt.Errorf("quality filter: %w", err)
	}
	widths := spectral.ClusterWidths(dis, labels)

	kept := domains[:0:0]
	for i, d := range domains {
		score := widths[i]
		if score <= MinScore {
			c.log.Debug("domain dropped",
				zap.Stringer("domain", d), zap.Float64("silhouette", score))

			continue
		}
		d.Score = &score
		kept = append(kept, d)
	}

	return kept, nil
}
