// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"math"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/l3montree-dev/scrmguard/dtos"
	"github.com/l3montree-dev/scrmguard/shared"
)

var dimensionWeights = map[dtos.Dimension]float64{
	dtos.DimensionProvenance:       0.25,
	dtos.DimensionIntegrity:        0.20,
	dtos.DimensionDependency:       0.20,
	dtos.DimensionSubstitutability: 0.10,
	dtos.DimensionAccessControl:    0.15,
	dtos.DimensionIncidentHistory:  0.10,
}

// dimensionOrder is the order dimensions are reported in.
var dimensionOrder = []dtos.Dimension{
	dtos.DimensionProvenance,
	dtos.DimensionIntegrity,
	dtos.DimensionDependency,
	dtos.DimensionSubstitutability,
	dtos.DimensionAccessControl,
	dtos.DimensionIncidentHistory,
}

// NIST SP 800-53 control families selected when a dimension scores below controlThreshold.
var dimensionControls = map[dtos.Dimension][]string{
	dtos.DimensionProvenance:       {"SR-3", "SR-4", "SR-5"},
	dtos.DimensionIntegrity:        {"SR-9", "SR-10", "SR-11"},
	dtos.DimensionDependency:       {"SR-2", "SR-6", "SA-9"},
	dtos.DimensionSubstitutability: {"SR-5", "CP-2"},
	dtos.DimensionAccessControl:    {"AC-2", "AC-6", "SA-9"},
	dtos.DimensionIncidentHistory:  {"IR-4", "IR-6", "SR-8"},
}

const (
	controlThreshold     = 7.0
	concentrationLimit   = 6
	criticalTierBoundary = 4.0
)

// noDataScore stands in for dimensions without a data source. It sits below
// the 5.0 midpoint so that an adversary-origin prohibited vendor stays
// critical regardless of how many components it supplies, while a trusted
// compliant vendor can still reach the low tier.
const noDataScore = 4.5

type originClass string

const (
	originTrusted   originClass = "trusted"
	originAllied    originClass = "allied"
	originAdversary originClass = "adversary"
	originOther     originClass = "other"
)

var trustedOrigins = mapset.NewSet(
	"us", "usa", "united states", "united states of america",
	"gb", "uk", "united kingdom", "great britain",
	"ca", "canada",
	"au", "australia",
	"nz", "new zealand",
)

var alliedOrigins = mapset.NewSet(
	"al", "albania", "be", "belgium", "bg", "bulgaria", "hr", "croatia",
	"cz", "czechia", "czech republic", "dk", "denmark", "ee", "estonia",
	"fi", "finland", "fr", "france", "de", "germany", "gr", "greece",
	"hu", "hungary", "is", "iceland", "it", "italy", "lv", "latvia",
	"lt", "lithuania", "lu", "luxembourg", "me", "montenegro", "nl", "netherlands",
	"mk", "north macedonia", "no", "norway", "pl", "poland", "pt", "portugal",
	"ro", "romania", "sk", "slovakia", "si", "slovenia", "es", "spain",
	"se", "sweden", "tr", "turkey", "türkiye",
	"jp", "japan", "kr", "south korea", "republic of korea", "il", "israel",
	"ph", "philippines", "th", "thailand",
)

var adversaryOrigins = mapset.NewSet(
	"cn", "china", "people's republic of china", "prc",
	"ru", "russia", "russian federation",
	"ir", "iran", "islamic republic of iran",
	"kp", "north korea", "democratic people's republic of korea", "dprk",
)

func classifyOrigin(country string) originClass {
	c := strings.ToLower(strings.TrimSpace(country))
	switch {
	case trustedOrigins.Contains(c):
		return originTrusted
	case alliedOrigins.Contains(c):
		return originAllied
	case adversaryOrigins.Contains(c):
		return originAdversary
	}
	return originOther
}

func provenanceScore(class originClass) float64 {
	switch class {
	case originTrusted:
		return 10
	case originAllied:
		return 7
	case originAdversary:
		return 1
	}
	return 4
}

func integrityScore(status string) (float64, dtos.IntegrityStatus, error) {
	switch s := dtos.IntegrityStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case dtos.IntegrityStatusCompliant:
		return 10, s, nil
	case dtos.IntegrityStatusExempt:
		return 8, s, nil
	case dtos.IntegrityStatusUnderReview, "":
		return 5, dtos.IntegrityStatusUnderReview, nil
	case dtos.IntegrityStatusProhibited:
		return 0, s, nil
	}
	return 0, "", shared.InvalidInput("unknown integrity status %q", status)
}

func dependencyScore(components int) float64 {
	switch {
	case components == 0:
		return 10
	case components <= 2:
		return 8
	case components <= 5:
		return 6
	case components <= 10:
		return 4
	}
	return 2
}

func riskTierFor(score float64) dtos.RiskTier {
	switch {
	case score >= 8:
		return dtos.RiskTierLow
	case score >= 6:
		return dtos.RiskTierModerate
	case score >= 4:
		return dtos.RiskTierHigh
	}
	return dtos.RiskTierCritical
}

// fivePoint maps a 0-10 risk magnitude onto the 1-5 likelihood/impact scale.
func fivePoint(x float64) int {
	return max(1, min(5, int(math.Ceil(x/2))))
}

type vendorScore struct {
	dimensions      []dtos.DimensionScore
	overall         float64
	tier            dtos.RiskTier
	controls        []string
	recommendations []string
	likelihood      int
	impact          int
}

// scoreVendor computes the full breakdown for a vendor adjacent to the given
// number of components.
func scoreVendor(countryOfOrigin string, integrityStatus string, components int) (vendorScore, error) {
	integrity, status, err := integrityScore(integrityStatus)
	if err != nil {
		return vendorScore{}, err
	}
	origin := classifyOrigin(countryOfOrigin)
	scores := map[dtos.Dimension]dtos.DimensionScore{
		dtos.DimensionProvenance: {
			Score:  provenanceScore(origin),
			Source: dtos.DimensionSourceComputed,
			Detail: string(origin),
		},
		dtos.DimensionIntegrity: {
			Score:  integrity,
			Source: dtos.DimensionSourceComputed,
			Detail: string(status),
		},
		dtos.DimensionDependency: {
			Score:  dependencyScore(components),
			Source: dtos.DimensionSourceComputed,
			Detail: pluralize(components, "component"),
		},
	}

	result := vendorScore{}
	overall := 0.0
	controls := mapset.NewSet[string]()
	for _, d := range dimensionOrder {
		score, ok := scores[d]
		if !ok {
			score = dtos.DimensionScore{Score: noDataScore, Source: dtos.DimensionSourceNoDataSource}
		}
		score.Dimension = d
		score.Weight = dimensionWeights[d]
		overall += score.Score * score.Weight
		if score.Score < controlThreshold {
			controls.Append(dimensionControls[d]...)
		}
		result.dimensions = append(result.dimensions, score)
	}

	result.overall = round(overall, 2)
	result.tier = riskTierFor(result.overall)
	result.controls = controls.ToSlice()
	slices.Sort(result.controls)
	result.likelihood = fivePoint(10 - (scores[dtos.DimensionProvenance].Score+integrity)/2)
	result.impact = fivePoint(10 - scores[dtos.DimensionDependency].Score)
	result.recommendations = vendorRecommendations(origin, status, components, result.overall)
	return result, nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}

func vendorRecommendations(origin originClass, status dtos.IntegrityStatus, components int, overall float64) []string {
	var recommendations []string
	if origin == originAdversary {
		recommendations = append(recommendations, "Immediate escalation: vendor originates from a foreign adversary nation, initiate SR-3 supply chain controls review")
	}
	if status == dtos.IntegrityStatusUnderReview || status == dtos.IntegrityStatusProhibited {
		recommendations = append(recommendations, "Remediation mandate: resolve the acquisition restriction status before further procurement")
	}
	if components >= concentrationLimit {
		recommendations = append(recommendations, "Supplier diversification: vendor supplies "+pluralize(components, "component")+", identify alternative sources")
	}
	if overall < criticalTierBoundary {
		recommendations = append(recommendations, "Escalate to the authorizing official for a risk acceptance or removal decision")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Routine reassessment at the next scheduled review cycle")
	}
	return recommendations
}

func prohibitedVendorGuidance(vendorName string) []string {
	return []string{
		"Stop new procurement from " + vendorName + " immediately",
		"Inventory every component sourced from " + vendorName + " and plan replacement",
		"Request an exception from the authorizing official if removal is not feasible",
		"Document the decision in the system security plan",
	}
}
