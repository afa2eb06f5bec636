package aggregate

import apperrors "github.com/inful/sitepipe/internal/foundation/errors"

func badDescriptor(reason string) error {
	return apperrors.BadDescriptorError(reason).Build()
}
