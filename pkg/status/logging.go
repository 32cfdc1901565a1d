// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about a run
type UserLogger struct {
	out io.Writer
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger writing to out
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		out: out,
		log: *zerolog.Ctx(ctx),
	}
}

// 🔍 LogFatal reports an error that stopped the run
func (u *UserLogger) LogFatal(description string, err error) {
	fmt.Fprint(u.out, pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Sprintln(description))
	if err != nil {
		fmt.Fprint(u.out, pterm.Error.Sprintln(err))
		u.log.Error().Err(err).Msg(description)
		return
	}
	u.log.Error().Msg(description)
}

// 📊 LogSummary reports the result of a batch, listing each failure
func (u *UserLogger) LogSummary(s Summary) {
	msg := FormatSummary(s)

	switch {
	case s.Total == 0:
		fmt.Fprint(u.out, pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Sprintln(msg))
		u.log.Warn().Msg(msg)
		return
	case s.OK():
		fmt.Fprint(u.out, pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Sprintln(msg))
		u.log.Info().Int("total", s.Total).Msg(msg)
		return
	}

	fmt.Fprint(u.out, pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Sprintln(msg))
	u.log.Warn().Int("total", s.Total).Int("failed", s.Failed()).Msg(msg)

	data := pterm.TableData{{"file", "error"}}
	for _, f := range s.Failures {
		data = append(data, []string{f.Path, fmt.Sprint(f.Err)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		u.log.Debug().Err(err).Msg("rendering failure table")
		for _, f := range s.Failures {
			fmt.Fprintf(u.out, "  %s: %v\n", f.Path, f.Err)
		}
		return
	}
	fmt.Fprintln(u.out, table)
}
