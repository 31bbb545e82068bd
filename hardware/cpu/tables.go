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

package cpu

import (
	"sync"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
)

// executor performs the instruction using the operands already decoded into
// the CPU.
type executor func(mc *CPU)

// the dispatch tables are indexed by opcode and are shared by every CPU
// instance. they are immutable once built
var tables struct {
	once    sync.Once
	decode  [0x10000]decoder
	execute [0x10000]executor
	size    [0x10000]uint8
	cycles  [0x10000]uint8
}

func buildTables() {
	tables.once.Do(func() {
		for op := 0; op < 0x10000; op++ {
			opcode := uint16(op)
			tables.decode[op] = classifyDecoder(opcode)
			tables.execute[op] = classifyExecutor(opcode)
			tables.size[op] = classifySize(opcode)
			tables.cycles[op] = classifyCycles(opcode)
		}
	})
}

// classifySize returns the size in words of the instruction.
func classifySize(opcode uint16) uint8 {
	return uint8(instructions.Classify(opcode).Words)
}

// classifyCycles returns the minimum number of cycles taken by the
// instruction.
func classifyCycles(opcode uint16) uint8 {
	return uint8(instructions.Classify(opcode).Cycles)
}

// classifyExecutor returns the execute function for the opcode.
func classifyExecutor(opcode uint16) executor {
	defn := instructions.Classify(opcode)

	if defn.Mnemonic.IsSetStatus() {
		return executeBSET
	}
	if defn.Mnemonic.IsClearStatus() {
		return executeBCLR
	}

	switch defn.Mnemonic {
	case instructions.ADD:
		return executeADD
	case instructions.ADC:
		return executeADC
	case instructions.ADIW:
		return executeADIW
	case instructions.SUB:
		return executeSUB
	case instructions.SUBI:
		return executeSUBI
	case instructions.SBC:
		return executeSBC
	case instructions.SBCI:
		return executeSBCI
	case instructions.SBIW:
		return executeSBIW
	case instructions.INC:
		return executeINC
	case instructions.DEC:
		return executeDEC
	case instructions.NEG:
		return executeNEG
	case instructions.COM:
		return executeCOM
	case instructions.MUL:
		return executeMUL
	case instructions.MULS:
		return executeMULS
	case instructions.MULSU:
		return executeMULSU
	case instructions.FMUL:
		return executeFMUL
	case instructions.FMULS:
		return executeFMULS
	case instructions.FMULSU:
		return executeFMULSU
	case instructions.AND:
		return executeAND
	case instructions.ANDI:
		return executeANDI
	case instructions.OR:
		return executeOR
	case instructions.ORI:
		return executeORI
	case instructions.EOR:
		return executeEOR
	case instructions.CP:
		return executeCP
	case instructions.CPC:
		return executeCPC
	case instructions.CPI:
		return executeCPI
	case instructions.CPSE:
		return executeCPSE
	case instructions.RJMP:
		return executeRJMP
	case instructions.IJMP:
		return executeIJMP
	case instructions.JMP:
		return executeJMP
	case instructions.RCALL:
		return executeRCALL
	case instructions.ICALL:
		return executeICALL
	case instructions.CALL:
		return executeCALL
	case instructions.RET:
		return executeRET
	case instructions.RETI:
		return executeRETI
	case instructions.BRBS:
		return executeBRBS
	case instructions.BRBC:
		return executeBRBC
	case instructions.SBRC:
		return executeSBRC
	case instructions.SBRS:
		return executeSBRS
	case instructions.SBIC:
		return executeSBIC
	case instructions.SBIS:
		return executeSBIS
	case instructions.MOV:
		return executeMOV
	case instructions.MOVW:
		return executeMOVW
	case instructions.LDI:
		return executeLDI
	case instructions.LDS:
		return executeLDS
	case instructions.STS:
		return executeSTS
	case instructions.LD, instructions.LDD:
		return load(defn.Pointer, defn.Access)
	case instructions.ST, instructions.STD:
		return store(defn.Pointer, defn.Access)
	case instructions.LPM:
		return executeLPM(defn.Access == instructions.PostIncrement)
	case instructions.ELPM:
		return executeELPM(defn.Access == instructions.PostIncrement)
	case instructions.IN:
		return executeIN
	case instructions.OUT:
		return executeOUT
	case instructions.PUSH:
		return executePUSH
	case instructions.POP:
		return executePOP
	case instructions.XCH:
		return executeXCH
	case instructions.LAS:
		return executeLAS
	case instructions.LAC:
		return executeLAC
	case instructions.LAT:
		return executeLAT
	case instructions.LSR:
		return executeLSR
	case instructions.ROR:
		return executeROR
	case instructions.ASR:
		return executeASR
	case instructions.SWAP:
		return executeSWAP
	case instructions.SBI:
		return executeSBI
	case instructions.CBI:
		return executeCBI
	case instructions.BST:
		return executeBST
	case instructions.BLD:
		return executeBLD
	case instructions.BSET:
		return executeBSET
	case instructions.BCLR:
		return executeBCLR
	case instructions.SLEEP:
		return executeSLEEP
	case instructions.WDR:
		return executeWDR
	}

	// NOP, BREAK, DES, SPM, EIJMP, EICALL and undefined opcodes
	return executeNOP
}
