// Package trace provides a logrus-backed tracer for the per-step and
// halt-time diagnostics described in spec.md §6. It generalizes the
// teacher's printf-style verbose mode (log.Printf("vm: %s", machine),
// gated by a -v/-d flag) into structured, leveled log entries.
package trace

import (
	"github.com/sirupsen/logrus"
)

// Tracer emits structured diagnostics for the emulator's step loop. The
// zero value is silent (Enabled defaults to false).
type Tracer struct {
	Enabled bool
	log     *logrus.Logger
}

// New returns a Tracer. When enabled is false, every call except Error is
// a no-op.
func New(enabled bool) *Tracer {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if enabled {
		log.SetLevel(logrus.DebugLevel)
	}
	return &Tracer{Enabled: enabled, log: log}
}

// Fetch logs the raw word fetched at pc.
func (t *Tracer) Fetch(pc, raw uint32) {
	if !t.Enabled {
		return
	}
	t.log.WithFields(logrus.Fields{"stage": "fetch", "pc": pc, "raw": raw}).Debug("fetch")
}

// Decode logs the decoded mnemonic for a fetched word.
func (t *Tracer) Decode(pc uint32, mnemonic string) {
	if !t.Enabled {
		return
	}
	t.log.WithFields(logrus.Fields{"stage": "decode", "pc": pc}).Debug(mnemonic)
}

// RegisterRead logs a source-register read.
func (t *Tracer) RegisterRead(name string, index, value uint32) {
	if !t.Enabled {
		return
	}
	t.log.WithFields(logrus.Fields{"stage": "reg-read", "reg": name, "index": index}).Debug(value)
}

// Execute logs the executer's (rd_value, next_pc) result.
func (t *Tracer) Execute(rdVal, nextPC uint32) {
	if !t.Enabled {
		return
	}
	t.log.WithFields(logrus.Fields{"stage": "execute", "rd_value": rdVal, "next_pc": nextPC}).Debug("execute")
}

// MemoryAccess logs a load or store's address and value.
func (t *Tracer) MemoryAccess(op string, address, value uint32) {
	if !t.Enabled {
		return
	}
	t.log.WithFields(logrus.Fields{"stage": "memory", "op": op, "address": address}).Debug(value)
}

// RegisterWrite logs a destination-register writeback.
func (t *Tracer) RegisterWrite(index, value uint32) {
	if !t.Enabled {
		return
	}
	t.log.WithFields(logrus.Fields{"stage": "reg-write", "index": index}).Debug(value)
}

// RegisterDump entry pairs an ABI alias with its value, for Halt.
type RegisterDump struct {
	Alias string
	Value uint32
}

// Halt logs the final register dump and the first data-memory words,
// matching the teacher's end-of-run summary.
func (t *Tracer) Halt(regs []RegisterDump, dataHead []uint32) {
	if !t.Enabled {
		return
	}
	for _, r := range regs {
		t.log.WithFields(logrus.Fields{"reg": r.Alias}).Info(r.Value)
	}
	t.log.WithField("words", dataHead).Info("data memory head")
}

// Error logs a fatal stage error before the process exits non-zero.
func (t *Tracer) Error(err error) {
	if t.log == nil {
		return
	}
	t.log.WithError(err).Error("emulation aborted")
}
