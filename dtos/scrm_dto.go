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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type RiskTier string

const (
	RiskTierLow      RiskTier = "low"
	RiskTierModerate RiskTier = "moderate"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

var RiskTiers = []RiskTier{RiskTierCritical, RiskTierHigh, RiskTierModerate, RiskTierLow}

// Rank orders tiers worst first. Higher is worse.
func (t RiskTier) Rank() int {
	switch t {
	case RiskTierCritical:
		return 4
	case RiskTierHigh:
		return 3
	case RiskTierModerate:
		return 2
	case RiskTierLow:
		return 1
	}
	return 0
}

type IntegrityStatus string

const (
	IntegrityStatusCompliant   IntegrityStatus = "compliant"
	IntegrityStatusExempt      IntegrityStatus = "exempt"
	IntegrityStatusUnderReview IntegrityStatus = "under_review"
	IntegrityStatusProhibited  IntegrityStatus = "prohibited"
)

type Dimension string

const (
	DimensionProvenance       Dimension = "provenance"
	DimensionIntegrity        Dimension = "integrity"
	DimensionDependency       Dimension = "dependency"
	DimensionSubstitutability Dimension = "substitutability"
	DimensionAccessControl    Dimension = "access_control"
	DimensionIncidentHistory  Dimension = "incident_history"
)

// DimensionSource tells consumers whether a score was computed from data or is
// a conservative stand-in because no data source is wired for the dimension.
type DimensionSource string

const (
	DimensionSourceComputed     DimensionSource = "computed"
	DimensionSourceNoDataSource DimensionSource = "no_data_source"
)

type DimensionScore struct {
	Dimension Dimension       `json:"dimension"`
	Score     float64         `json:"score"`
	Weight    float64         `json:"weight"`
	Source    DimensionSource `json:"source"`
	Detail    string          `json:"detail,omitempty"`
}

func (d DimensionScore) HasData() bool {
	return d.Source == DimensionSourceComputed
}

type VendorAssessmentDTO struct {
	AssessmentID    uuid.UUID        `json:"assessmentId"`
	ProjectID       string           `json:"projectId"`
	VendorID        string           `json:"vendorId"`
	VendorName      string           `json:"vendorName"`
	Dimensions      []DimensionScore `json:"dimensions"`
	OverallScore    float64          `json:"overallScore"`
	RiskTier        RiskTier         `json:"riskTier"`
	Controls        []string         `json:"controls"`
	Recommendations []string         `json:"recommendations"`
	AssessedBy      string           `json:"assessedBy"`
	AssessedAt      time.Time        `json:"assessedAt"`
}

func (a VendorAssessmentDTO) Score(d Dimension) (DimensionScore, bool) {
	for _, s := range a.Dimensions {
		if s.Dimension == d {
			return s, true
		}
	}
	return DimensionScore{}, false
}

type AssessmentFailure struct {
	VendorID string `json:"vendorId"`
	Error    string `json:"error"`
}

type ProjectAssessmentDTO struct {
	ProjectID        string                `json:"projectId"`
	VendorsAssessed  int                   `json:"vendorsAssessed"`
	Failures         []AssessmentFailure   `json:"failures"`
	TierHistogram    map[RiskTier]int      `json:"tierHistogram"`
	TopRisks         []VendorAssessmentDTO `json:"topRisks"`
	ControlsCoverage []string              `json:"controlsCoverage"`
}

type ProhibitedVendorDTO struct {
	VendorID        string   `json:"vendorId"`
	VendorName      string   `json:"vendorName"`
	CountryOfOrigin string   `json:"countryOfOrigin"`
	CachedRiskTier  *string  `json:"cachedRiskTier,omitempty"`
	Guidance        []string `json:"guidance"`
}
