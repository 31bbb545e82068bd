// This file is part of GopherAVR.
//
// GopherAVR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAVR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAVR.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Mnemonic identifies an instruction.
type Mnemonic int

// List of mnemonics. Aliases that share an encoding with another instruction
// (LSL, ROL, TST, CLR, SBR, CBR, etc.) are not listed. They are a concern
// for the disassembler only.
const (
	Undefined Mnemonic = iota

	// arithmetic
	ADD
	ADC
	ADIW
	SUB
	SUBI
	SBC
	SBCI
	SBIW
	INC
	DEC
	NEG
	COM
	MUL
	MULS
	MULSU
	FMUL
	FMULS
	FMULSU
	DES

	// logic
	AND
	ANDI
	OR
	ORI
	EOR

	// comparison
	CP
	CPC
	CPI
	CPSE

	// branches
	RJMP
	IJMP
	EIJMP
	JMP
	RCALL
	ICALL
	EICALL
	CALL
	RET
	RETI
	BRBS
	BRBC

	// skips
	SBRC
	SBRS
	SBIC
	SBIS

	// data transfer
	MOV
	MOVW
	LDI
	LDS
	LD
	LDD
	STS
	ST
	STD
	LPM
	ELPM
	SPM
	IN
	OUT
	PUSH
	POP
	XCH
	LAS
	LAC
	LAT

	// bit operations
	LSR
	ROR
	ASR
	SWAP
	SBI
	CBI
	BST
	BLD
	BSET
	BCLR
	SEC
	SEZ
	SEN
	SEV
	SES
	SEH
	SET
	SEI
	CLC
	CLZ
	CLN
	CLV
	CLS
	CLH
	CLT
	CLI

	// control
	NOP
	SLEEP
	WDR
	BREAK
)

var mnemonicNames = [...]string{
	Undefined: "(undefined)",
	ADD:       "ADD",
	ADC:       "ADC",
	ADIW:      "ADIW",
	SUB:       "SUB",
	SUBI:      "SUBI",
	SBC:       "SBC",
	SBCI:      "SBCI",
	SBIW:      "SBIW",
	INC:       "INC",
	DEC:       "DEC",
	NEG:       "NEG",
	COM:       "COM",
	MUL:       "MUL",
	MULS:      "MULS",
	MULSU:     "MULSU",
	FMUL:      "FMUL",
	FMULS:     "FMULS",
	FMULSU:    "FMULSU",
	DES:       "DES",
	AND:       "AND",
	ANDI:      "ANDI",
	OR:        "OR",
	ORI:       "ORI",
	EOR:       "EOR",
	CP:        "CP",
	CPC:       "CPC",
	CPI:       "CPI",
	CPSE:      "CPSE",
	RJMP:      "RJMP",
	IJMP:      "IJMP",
	EIJMP:     "EIJMP",
	JMP:       "JMP",
	RCALL:     "RCALL",
	ICALL:     "ICALL",
	EICALL:    "EICALL",
	CALL:      "CALL",
	RET:       "RET",
	RETI:      "RETI",
	BRBS:      "BRBS",
	BRBC:      "BRBC",
	SBRC:      "SBRC",
	SBRS:      "SBRS",
	SBIC:      "SBIC",
	SBIS:      "SBIS",
	MOV:       "MOV",
	MOVW:      "MOVW",
	LDI:       "LDI",
	LDS:       "LDS",
	LD:        "LD",
	LDD:       "LDD",
	STS:       "STS",
	ST:        "ST",
	STD:       "STD",
	LPM:       "LPM",
	ELPM:      "ELPM",
	SPM:       "SPM",
	IN:        "IN",
	OUT:       "OUT",
	PUSH:      "PUSH",
	POP:       "POP",
	XCH:       "XCH",
	LAS:       "LAS",
	LAC:       "LAC",
	LAT:       "LAT",
	LSR:       "LSR",
	ROR:       "ROR",
	ASR:       "ASR",
	SWAP:      "SWAP",
	SBI:       "SBI",
	CBI:       "CBI",
	BST:       "BST",
	BLD:       "BLD",
	BSET:      "BSET",
	BCLR:      "BCLR",
	SEC:       "SEC",
	SEZ:       "SEZ",
	SEN:       "SEN",
	SEV:       "SEV",
	SES:       "SES",
	SEH:       "SEH",
	SET:       "SET",
	SEI:       "SEI",
	CLC:       "CLC",
	CLZ:       "CLZ",
	CLN:       "CLN",
	CLV:       "CLV",
	CLS:       "CLS",
	CLH:       "CLH",
	CLT:       "CLT",
	CLI:       "CLI",
	NOP:       "NOP",
	SLEEP:     "SLEEP",
	WDR:       "WDR",
	BREAK:     "BREAK",
}

func (m Mnemonic) String() string {
	if m < 0 || int(m) >= len(mnemonicNames) {
		return mnemonicNames[Undefined]
	}
	return mnemonicNames[m]
}

// IsSetStatus returns true if the mnemonic is one of the SEC to SEI
// instructions. IsClearStatus is the equivalent for the CLC to CLI
// instructions.
func (m Mnemonic) IsSetStatus() bool {
	return m >= SEC && m <= SEI
}

// IsClearStatus returns true if the mnemonic is one of CLC to CLI.
func (m Mnemonic) IsClearStatus() bool {
	return m >= CLC && m <= CLI
}
