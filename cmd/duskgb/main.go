package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/duskgb/duskgb/internal/cartridge"
	"github.com/duskgb/duskgb/internal/cpu"
	"github.com/duskgb/duskgb/internal/interrupts"
	"github.com/duskgb/duskgb/internal/mmu"
	"github.com/duskgb/duskgb/pkg/utils"
)

var (
	romFile = flag.String("rom", "", "path to the ROM image (raw, gz, zip or 7z)")
	steps   = flag.Uint64("steps", 0, "number of instructions to execute, 0 runs until halt or fault")
	debug   = flag.Bool("debug", false, "log every executed instruction")
)

func main() {
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if *romFile == "" {
		log.Fatal("no ROM image provided, use -rom")
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *romFile, err)
	}

	cart, err := cartridge.Load(rom, log)
	if err != nil {
		log.Fatalf("failed to load cartridge: %v", err)
	}

	irq := interrupts.NewService()
	bus := mmu.NewMMU(cart, irq)
	core := cpu.NewCPU(bus, irq)

	// entry point and stack top after the boot sequence
	core.PC = 0x0100
	core.SP = 0xFFFE

	var executed uint64
	for *steps == 0 || executed < *steps {
		if log.IsLevelEnabled(logrus.DebugLevel) {
			instr := cpu.InstructionSet[bus.Read(core.PC)]
			log.Debugf("PC=0x%04X SP=0x%04X AF=0x%04X %s", core.PC, core.SP, core.AF.Uint16(), instr.Name())
		}

		if _, err := core.Step(); err != nil {
			log.Fatalf("execution fault at PC 0x%04X: %v", core.PC, err)
		}
		executed++

		// with no peripherals raising interrupt lines a halted core
		// never resumes
		if core.Halted() && !irq.Pending() {
			log.Infof("core halted at PC 0x%04X", core.PC)
			break
		}
	}

	log.Infof("executed %d instructions in %d cycles", executed, core.Cycles())
}
