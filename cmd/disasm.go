package cmd

import (
	"bufio"
	"fmt"
	"io"

	"chyp8/emu/cpu"
	"chyp8/emu/host"

	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm `path/ROM`",
	Short: "print the instructions of a ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := host.ReadROM(args[0])
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		return disassemble(cmd.OutOrStdout(), rom)
	},
}

// disassemble writes one "addr  word  mnemonic" line per two-byte word,
// addresses as they are once the ROM is loaded. Words that a skip
// instruction may jump over are indented.
func disassemble(w io.Writer, rom []byte) error {
	bw := bufio.NewWriter(w)
	indent := ""
	for i := 0; i < len(rom); i += 2 {
		addr := cpu.ProgramStart + i
		if i+1 == len(rom) {
			fmt.Fprintf(bw, "%03X  %02X    %sDB 0x%02X\n", addr, rom[i], indent, rom[i])
			break
		}
		op := uint16(rom[i])<<8 | uint16(rom[i+1])
		fmt.Fprintf(bw, "%03X  %04X  %s%s\n", addr, op, indent, cpu.Disassemble(op))

		indent = ""
		if cpu.Decode(op).IsSkip() {
			indent = "  "
		}
	}
	return bw.Flush()
}
