package cpu

import (
	"errors"
	"io"

	"github.com/lmarchetti/rv32i/internal/trace"
)

// Processor is the whole machine: fetcher (PC + instruction memory),
// register file, data memory, and the halt flag. It is not
// goroutine-safe; a single goroutine should drive it via Step/Run.
type Processor struct {
	Fetcher  *Fetcher
	Register RegisterFile
	Memory   *MainMemory
	halted   bool
	tracer   *trace.Tracer
}

// Config bundles the constants a Processor is built from, allowing the
// default spec.md sizes to be overridden (internal/config).
type Config struct {
	IMEMBase  uint32
	IMEMWords int
	DMEMWords int
}

// DefaultConfig returns the spec.md §3 constants.
func DefaultConfig() Config {
	return Config{
		IMEMBase:  DefaultIMEMBase,
		IMEMWords: InstructionMemorySize,
		DMEMWords: DataMemorySize,
	}
}

// New returns a Processor built from cfg, with a disabled tracer.
func New(cfg Config) *Processor {
	return &Processor{
		Fetcher: NewFetcher(cfg.IMEMBase, cfg.IMEMWords),
		Memory:  NewMainMemory(cfg.DMEMWords),
		tracer:  trace.New(false),
	}
}

// SetTracer installs t as the processor's diagnostic sink.
func (p *Processor) SetTracer(t *trace.Tracer) {
	p.tracer = t
}

// LoadHex loads a hex program from r into instruction memory starting at
// byte address base.
func (p *Processor) LoadHex(r io.Reader, base uint32) error {
	return p.Fetcher.LoadHex(r, base)
}

// Halted reports whether the processor has observed a halt condition.
func (p *Processor) Halted() bool {
	return p.halted
}

// Step executes one fetch/decode/register-read/execute/memory/writeback/
// pc-update cycle, per spec.md §4.6. Any stage error aborts the step with
// no partial writeback: an erroring LOAD does not write its register, an
// erroring STORE does not update PC.
func (p *Processor) Step() error {
	if p.halted {
		return ErrHalted
	}

	// 1. fetch
	pc := p.Fetcher.PC()
	raw := p.Fetcher.Fetch()
	p.tracer.Fetch(pc, raw)

	// 2. the jal x0, 0 halt sentinel: still decoded/executed as a
	// self-loop, but no further step will run after this one.
	if raw == 0x0000006F {
		p.halted = true
	}

	// 3. decode
	in, err := decode(raw)
	if err != nil {
		return err
	}
	p.tracer.Decode(pc, in.Mnemonic())

	// 4. the zero-word halt sentinel: stop before executing.
	if in.IsHalt {
		p.halted = true
		return nil
	}

	// 5. register read
	rs1Val, err := p.Register.Read(in.Rs1)
	if err != nil {
		return err
	}
	rs2Val, err := p.Register.Read(in.Rs2)
	if err != nil {
		return err
	}
	p.tracer.RegisterRead("rs1", in.Rs1, rs1Val)
	p.tracer.RegisterRead("rs2", in.Rs2, rs2Val)

	// 6. execute
	rdVal, nextPC := execute(in, rs1Val, rs2Val, pc)
	p.tracer.Execute(rdVal, nextPC)

	// 7. memory access
	switch in.Class {
	case ClassLoad:
		addr := rs1Val + in.Imm
		rdVal, err = p.Memory.Read(addr, in.Width)
		if err != nil {
			return err
		}
		p.tracer.MemoryAccess("load", addr, rdVal)
	case ClassStore:
		addr := rs1Val + in.Imm
		if err := p.Memory.Write(addr, rs2Val, in.Width); err != nil {
			return err
		}
		p.tracer.MemoryAccess("store", addr, rs2Val)
	}

	// 8. register writeback
	if in.WritesRegister() {
		if err := p.Register.Write(in.Rd, rdVal); err != nil {
			return err
		}
		p.tracer.RegisterWrite(in.Rd, rdVal)
	}

	// 9. pc update
	p.Fetcher.SetPC(nextPC)
	return nil
}

// Run steps the processor until it halts cleanly or a stage errors.
func (p *Processor) Run() error {
	for !p.halted {
		if err := p.Step(); err != nil {
			if errors.Is(err, ErrHalted) {
				break
			}
			p.tracer.Error(err)
			return err
		}
	}
	p.dumpOnHalt()
	return nil
}

func (p *Processor) dumpOnHalt() {
	dump := p.Register.Dump()
	regs := make([]trace.RegisterDump, len(dump))
	for i, r := range dump {
		regs[i] = trace.RegisterDump{Alias: r.Alias, Value: r.Value}
	}
	p.tracer.Halt(regs, p.Memory.Head(10))
}
