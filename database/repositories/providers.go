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

package repositories

import (
	"github.com/l3montree-dev/scrmguard/shared"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewDependencyEdgeRepository, fx.As(new(shared.DependencyEdgeRepository)))),
	fx.Provide(fx.Annotate(NewCveTriageRepository, fx.As(new(shared.CveTriageRepository)))),
	fx.Provide(fx.Annotate(NewAgreementRepository, fx.As(new(shared.AgreementRepository)))),
	fx.Provide(fx.Annotate(NewVendorRepository, fx.As(new(shared.VendorRepository)))),
	fx.Provide(fx.Annotate(NewScrmAssessmentRepository, fx.As(new(shared.ScrmAssessmentRepository)))),
	fx.Provide(fx.Annotate(NewAuditEventRepository, fx.As(new(shared.AuditEventRepository)))),
)
