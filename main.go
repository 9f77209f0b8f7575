package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rhartert/trilean/internal/cnf"
	"github.com/rhartert/trilean/trit"
)

var flagAssign = flag.String(
	"assign",
	"",
	"signed literals to assign before evaluation (e.g. \"1 -3 4\")",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		assignment:   *flagAssign,
	}, nil
}

type config struct {
	instanceFile string
	assignment   string
}

func run(cfg *config) error {
	instance, err := cnf.LoadFile(cfg.instanceFile)
	if err != nil {
		return err
	}

	assignment, err := cnf.ParseAssignment(cfg.assignment, instance.Variables)
	if err != nil {
		return fmt.Errorf("could not parse assignment: %w", err)
	}

	status, stats := instance.Eval(assignment)

	fmt.Printf("c variables:    %d\n", instance.Variables)
	fmt.Printf("c clauses:      %d\n", len(instance.Clauses))
	fmt.Printf("c satisfied:    %d\n", stats.Satisfied)
	fmt.Printf("c falsified:    %d\n", stats.Falsified)
	fmt.Printf("c undetermined: %d\n", stats.Undetermined)
	fmt.Println(trit.Resolve(status,
		"s SATISFIED",
		"s FALSIFIED",
		"s UNDETERMINED",
	))

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
