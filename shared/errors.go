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

package shared

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	ErrNotFound                = stderrors.New("not found")
	ErrInvalidInput            = stderrors.New("invalid input")
	ErrAlreadyExists           = stderrors.New("already exists")
	ErrBackingStoreUnavailable = stderrors.New("backing store unavailable")
)

// InvalidInput wraps ErrInvalidInput with a one line description.
func InvalidInput(format string, args ...any) error {
	return errors.Wrap(ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return errors.Wrap(ErrNotFound, fmt.Sprintf(format, args...))
}

// ValidateStruct runs the shared validator and reports the first failing field
// as an invalid input error.
func ValidateStruct(s any) error {
	err := V.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return InvalidInput("field %s failed on the '%s' rule", fe.Namespace(), fe.Tag())
	}
	return errors.Wrap(ErrInvalidInput, err.Error())
}
