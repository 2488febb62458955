package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Lines))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal("256", asm.Equate["MEMORY_SIZE"])
	assert.Equal("0xf4", asm.Equate["STACK_TOP"])
	assert.Equal("7", asm.Equate["REG_SP"])
}

func lineEqual(t *testing.T, expected, lines []Line) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(lines))
	if len(expected) == len(lines) {
		for n := range len(expected) {
			assert.Equal(expected[n], lines[n])
		}
	}
}

func TestAssemblerMult(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; mult.asm",
		"LDI R0,8",
		"LDI R1,9",
		"MUL R0,R1",
		"PRN R0 ; => 72",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Line{
		{2, 0, []string{"LDI", "R0", "8"}, MakeCodeLdi(0, 8), nil, ""},
		{3, 3, []string{"LDI", "R1", "9"}, MakeCodeLdi(1, 9), nil, ""},
		{4, 6, []string{"MUL", "R0", "R1"}, MakeCodeRegReg(OP_MUL, 0, 1), nil, ""},
		{5, 9, []string{"PRN", "R0"}, MakeCodeReg(OP_PRN, 0), nil, ""},
		{6, 11, []string{"HLT"}, MakeCodeNone(OP_HLT), nil, ""},
	}

	lineEqual(t, expected, prog.Lines)

	assert.Equal([]byte{
		0x82, 0, 8,
		0x82, 1, 9,
		0xa2, 0, 1,
		0x47, 0,
		0x01,
	}, prog.Binary())
}

func TestAssemblerCase(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("ldi r2, 0x10\npush sp\npop R7\nhlt"))
	assert.NoError(err)
	assert.Equal([]byte{0x82, 2, 0x10, 0x45, 7, 0x46, 7, 0x01}, prog.Binary())
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("ANSWER", "42")

	program := []string{
		".equ COUNT 5",
		".equ COUNTER R3",
		"LDI R0 COUNT",
		"LDI R1 $(COUNT * 2)",
		"LDI SP STACK_TOP",
		"LDI COUNTER $(LINENO)",
		"LDI R4 ANSWER",
		"LDI R5 'A'",
		"LDI R6 -1",
		"LDI R6 ~0x0f",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]byte{
		0x82, 0, 5,
		0x82, 1, 10,
		0x82, 7, 0xf4,
		0x82, 3, 6,
		0x82, 4, 42,
		0x82, 5, 'A',
		0x82, 6, 0xff,
		0x82, 6, 0xf0,
	}, prog.Binary())
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".macro PRINTN value",
		"LDI R0 value",
		"PRN R0",
		".endm",
		"PRINTN 5",
		"PRINTN $(2 * 3)",
		"HLT",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]byte{
		0x82, 0, 5, 0x47, 0,
		0x82, 0, 6, 0x47, 0,
		0x01,
	}, prog.Binary())

	// Macro lines report the macro definition line.
	assert.Equal(2, prog.Lines[0].LineNo)
	assert.Equal(3, prog.Lines[1].LineNo)
	assert.Equal(7, prog.Lines[4].LineNo)
}

func TestAssemblerDirectiveCase(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".EQU X 3",
		".Macro TWICE reg",
		"PRN reg",
		"PRN reg",
		".ENDM",
		"LDI R0 X",
		"TWICE R0",
		".DB 7",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal([]byte{0x82, 0, 3, 0x47, 0, 0x47, 0, 7}, prog.Binary())
}

func TestAssemblerEmptyEquate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("B", "")

	_, err := asm.Parse(strings.NewReader("LDI R0,B\nHLT\n"))
	assert.ErrorIs(err, ErrParseNumber(""))

	var se ErrSyntax
	if assert.True(errors.As(err, &se)) {
		assert.Equal(1, se.LineNo)
	}

	_, err = asm.Parse(strings.NewReader("B: .db B\n"))
	assert.ErrorIs(err, ErrParseNumber(""))
}

func TestAssemblerMacroLocalLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		".macro SKIP reg",
		"LDI reg @over",
		"JMP reg",
		"HLT",
		"@over:",
		".endm",
		"SKIP R1",
		"SKIP R2",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	assert.Equal([]byte{
		0x82, 1, 6, 0x54, 1, 0x01,
		0x82, 2, 12, 0x54, 2, 0x01,
	}, prog.Binary())
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; call.asm",
		"        LDI R1,Mult2Print",
		"        LDI R0,10",
		"        CALL R1",
		"        HLT",
		"",
		"Mult2Print:",
		"        ADD R0,R0",
		"        PRN R0",
		"        RET",
		"Data: .db 1 2 3",
		"End:",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(9, asm.Label["Mult2Print"])
	assert.Equal(15, asm.Label["Data"])
	assert.Equal(18, asm.Label["End"])

	assert.Equal("Mult2Print", prog.Lines[0].LinkLabel)
	assert.Equal(MakeCodeLdi(1, 9), prog.Lines[0].Code)

	assert.Equal([]byte{
		0x82, 1, 9,
		0x82, 0, 10,
		0x50, 1,
		0x01,
		0xa0, 0, 0,
		0x47, 0,
		0x11,
		1, 2, 3,
	}, prog.Binary())
}

func TestAssemblerTooLarge(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	_, err := asm.Parse(strings.NewReader(strings.Repeat("HLT\n", MEMORY_SIZE)))
	assert.NoError(err)

	_, err = asm.Parse(strings.NewReader(strings.Repeat("HLT\n", MEMORY_SIZE+1)))
	assert.ErrorIs(err, ErrProgramTooLarge)
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
		err  error
	}){
		{"DUP:\nDUP:\n", 2, ErrLabelDuplicate},
		{"LDI R0 nothing", 1, ErrLabelMissing("nothing")},
		{"HLT\nJMP R0\nLDI R0,Missing\n", 3, ErrLabelMissing("Missing")},
		{"LDI R0 $(\"aaa\")", 1, ErrParseExpression("\"aaa\"")},
		{"LDI R0 $(more(\"aaa\"))", 1, nil},
		{"LDI R0 $(0x10000000000000000)", 1, ErrParseExpression("0x10000000000000000")},
		{"LDI R0 256", 1, ErrValueRange},
		{"LDI R0 -129", 1, ErrValueRange},
		{"LDI R0 1x", 1, ErrParseNumber("1x")},
		{"LDI", 1, ErrOpcodeMissing},
		{"LDI R0", 1, ErrOpcodeValueMissing},
		{"LDI R0 1 2", 1, ErrOpcodeExtraArgs},
		{"LDI R8 1", 1, ErrParseRegister("R8")},
		{"ADD R0", 1, ErrOpcodeValueMissing},
		{"ADD R0 R9", 1, ErrParseRegister("R9")},
		{"ADD 1 R0", 1, ErrParseRegister("1")},
		{"PRN", 1, ErrOpcodeMissing},
		{"PRN R0 R1", 1, ErrOpcodeExtraArgs},
		{"HLT R0", 1, ErrOpcodeExtraArgs},
		{"NOP", 1, ErrInstructionInvalid},
		{".db", 1, ErrOpcodeValueMissing},
		{".db 300", 1, ErrValueRange},
		{".db x", 1, ErrParseNumber("x")},
		{".equ", 1, ErrEquateSyntax},
		{".equ A", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{".macro\n", 1, ErrMacroSyntax},
		{".macro A B C\n.endm\nA 1\n", 3, ErrMacroSyntax},
		{".macro A B\n.macro C\n.endm\n.endm", 2, ErrMacroNesting},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3, ErrMacroDuplicate},
		{".macro A B\n.endm\n.endm\n", 3, ErrMacroLonelyEndm},
		{".macro A\nHLT\n", 2, ErrMacroLonely},
		{".macro A B\nPRN B\n.endm\nA R0\nA R9\n", 5, ErrParseRegister("R9")},
		{"LDI R0 ~", 1, ErrParseNumber("")},
		{".db ~", 1, ErrParseNumber("")},
		{"LDI R0,End\n" + strings.Repeat("HLT\n", MEMORY_SIZE-3) + "End:\n", 1, ErrValueRange},
		{".MACRO A\n.MACRO B\n", 2, ErrMacroNesting},
		{".ENDM\n", 1, ErrMacroLonelyEndm},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			if entry.err != nil {
				assert.ErrorIs(err, entry.err, entry.prog)
			}
		}
	}
}
