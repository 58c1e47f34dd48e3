package handler

import (
	"github.com/sirupsen/logrus"

	"hfenv/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
