package services

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	apiError "github.com/techagentng/bookxchange/errors"
)

// passOrInternal returns domain errors unchanged and hides everything else
// behind ErrInternalServerError after logging it.
func passOrInternal(log *logrus.Logger, err error, op string) error {
	var e *apiError.Error
	if errors.As(err, &e) && e.Kind != apiError.KindInternal {
		return e
	}
	log.WithError(err).WithField("op", op).Error("store failure")
	return apiError.ErrInternalServerError
}
