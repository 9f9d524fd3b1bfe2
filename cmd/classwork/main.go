// Package main provides the classwork CLI, which runs the classroom
// forward-pass exercises and prints their results.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/classwork/internal/backend/cpu"
	"github.com/born-ml/classwork/internal/exercise"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("classwork: ")

	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("classwork %s\n", version)
		return
	}

	run := flag.String("run", "all", "Exercise to run (perceptron, compare, all)")
	list := flag.Bool("list", false, "List available exercises and exit")
	flag.Parse()

	if *list {
		if err := listExercises(os.Stdout); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if err := runExercises(os.Stdout, *run); err != nil {
		log.Fatalf("%v", err)
	}
}

func listExercises(w io.Writer) error {
	for _, e := range exercise.All() {
		if _, err := fmt.Fprintf(w, "  %-12s %s\n", e.Name, e.Description); err != nil {
			return fmt.Errorf("list exercises: %w", err)
		}
	}
	return nil
}

func runExercises(w io.Writer, name string) error {
	backend := cpu.New()

	if name != "all" {
		e, err := exercise.Lookup(name)
		if err != nil {
			return err
		}
		return e.Run(w, backend)
	}

	for i, e := range exercise.All() {
		banner := fmt.Sprintf("== %s ==\n", e.Name)
		if i > 0 {
			banner = "\n" + banner
		}
		if _, err := io.WriteString(w, banner); err != nil {
			return fmt.Errorf("write banner: %w", err)
		}
		if err := e.Run(w, backend); err != nil {
			return err
		}
	}
	return nil
}
