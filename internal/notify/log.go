// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import "github.com/MKhiriev/go-notes-keeper/internal/logger"

// Log writes notifications to the application log: successes at info level,
// errors at warn level.
type Log struct {
	logger *logger.Logger
}

func NewLog(log *logger.Logger) *Log {
	return &Log{logger: log}
}

func (l *Log) Success(msg string) {
	l.logger.Info().Str("func", "notify.Log").Str("kind", KindSuccess.String()).Msg(msg)
}

func (l *Log) Error(msg string) {
	l.logger.Warn().Str("func", "notify.Log").Str("kind", KindError.String()).Msg(msg)
}
