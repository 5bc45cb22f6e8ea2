/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package validate

import (
	stderrors "errors"

	"dirpx.dev/rxmerr"
	"go.uber.org/zap"

	"dirpx.dev/gedcom/gdcore/errors"
	"dirpx.dev/gedcom/gdcore/model/record"
)

// Gate decides whether a write may start.
//
// Run invokes the validator unless Suppress is set, keeps every finding for
// later inspection, and refuses the write with an *errors.PreflightError
// when at least one finding has Error severity.
type Gate struct {
	// Validator performs the checks. A nil Validator means
	// ReferenceValidator.
	Validator Validator

	// Suppress skips validation entirely.
	Suppress bool

	// Autorepair is passed through to the validator.
	Autorepair bool

	// Logger receives one entry per finding. Nil means no logging.
	Logger *zap.Logger

	findings []Finding
}

// Run validates g and reports whether emission may proceed.
func (gt *Gate) Run(g *record.Gedcom) error {
	logger := gt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if gt.Suppress {
		logger.Debug("validation suppressed")
		gt.findings = nil
		return nil
	}

	v := gt.Validator
	if v == nil {
		v = ReferenceValidator{}
	}
	gt.findings = v.Validate(g, gt.Autorepair)

	c := rxmerr.NewCollector()
	errs := 0
	for _, f := range gt.findings {
		fields := []zap.Field{zap.String("severity", f.Severity.String()), zap.String("xref", f.Xref)}
		switch f.Severity {
		case Error:
			errs++
			c.Append(stderrors.New(f.String()))
			logger.Warn(f.Message, fields...)
		case Warning:
			logger.Info(f.Message, fields...)
		default:
			logger.Debug(f.Message, fields...)
		}
	}
	logger.Debug("validation finished",
		zap.Int("findings", len(gt.findings)),
		zap.Int("errors", errs),
		zap.Bool("autorepair", gt.Autorepair))

	if errs > 0 {
		return &errors.PreflightError{ErrorCount: errs, Findings: c.Err()}
	}
	return nil
}

// Findings returns the findings of the last Run, whatever its outcome. It is
// nil when validation was suppressed or has not run.
func (gt *Gate) Findings() []Finding {
	return gt.findings
}
