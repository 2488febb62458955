package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackOverflow   = errors.New(f("stack overflow"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))
	ErrFlagsUnset      = errors.New(f("flags unset"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrAluUnsupported  = errors.New(f("alu operation unsupported"))
	ErrBudgetExceeded  = errors.New(f("budget exceeded"))
	ErrHalted          = errors.New(f("halted"))
	ErrProgramTooLarge = errors.New(f("program too large"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrValueRange         = errors.New(f("value out of range"))

	// Loader errors
	ErrParseBinary = errors.New(f("not an 8-bit binary number"))
)

// ErrOutOfBounds is an access to a memory address outside of [0, MEMORY_SIZE).
type ErrOutOfBounds int

func (eb ErrOutOfBounds) Error() string {
	return f("address 0x%x out of bounds", int(eb))
}

func (eb ErrOutOfBounds) Is(err error) (ok bool) {
	_, ok = err.(ErrOutOfBounds)
	return
}

// ErrIllegalInstruction is an opcode byte with no handler.
type ErrIllegalInstruction struct {
	Opcode Opcode
	Pc     int
}

func (ei ErrIllegalInstruction) Error() string {
	return f("illegal instruction 0x%02x at pc 0x%02x", byte(ei.Opcode), ei.Pc)
}

func (ei ErrIllegalInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegalInstruction)
	return
}

// ErrOpcode locates a failing instruction.
type ErrOpcode struct {
	Pc   int
	Code Code
}

func (eo ErrOpcode) Error() string {
	return f("pc 0x%02x %v", eo.Pc, eo.Code)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
