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

// Package instructions defines the AVR instruction set. Every 16bit opcode is
// classified by Classify(), which returns a Definition describing the
// instruction's mnemonic, how its operands are encoded, its size in words and
// the minimum number of cycles it takes to execute.
//
// Classification is an ordered cascade of mask tests. Some encodings overlap
// and the order in which the masks are tested decides which instruction an
// opcode belongs to. For example, the SEC to SEI and CLC to CLI instructions
// are exact encodings of the more general BSET and BCLR instructions. The
// exact encodings are tested first and so BSET and BCLR are never the result
// of a classification.
//
// Opcodes that do not match any instruction are classified as Undefined. The
// Undefined instruction is one word long, takes one cycle and does nothing.
package instructions
