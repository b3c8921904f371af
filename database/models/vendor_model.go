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

package models

import (
	"time"
)

// Vendor is input data maintained outside of this service. Only the cached
// risk tier and the last assessment timestamp are written back.
type Vendor struct {
	ID              string     `json:"id" gorm:"column:id;primaryKey;type:text"`
	ProjectID       string     `json:"projectId" gorm:"column:project_id;primaryKey;type:text"`
	VendorName      string     `json:"vendorName" gorm:"column:vendor_name;type:text;not null"`
	CountryOfOrigin string     `json:"countryOfOrigin" gorm:"column:country_of_origin;type:text"`
	IntegrityStatus string     `json:"integrityStatus" gorm:"column:integrity_status;type:text"`
	CachedRiskTier  *string    `json:"cachedRiskTier" gorm:"column:cached_risk_tier;type:text"`
	LastAssessed    *time.Time `json:"lastAssessed" gorm:"column:last_assessed"`
}

func (Vendor) TableName() string {
	return "vendors"
}
