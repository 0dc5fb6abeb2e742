package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"

	"github.com/krishnacharya/fpylll/genlat"
	"github.com/krishnacharya/fpylll/intmat"
)

func usage() {
	fmt.Println(`usage: latgen [options]

Generates a structured random lattice basis and prints it in the textual
basis format (one "[ v1 ... vn ]" row per line), or writes it to a file.

Options:
  -algo    <name>     intrel | simdioph | uniform | ntrulike | ntrulike2 | qary | trg
  -d       <int>      lattice dimension parameter (required)
  -bits    <int>      entry bit length (intrel, simdioph, uniform)
  -bits2   <int>      first-entry bit length (simdioph)
  -k       <int>      rank parameter (qary)
  -q       <decimal>  explicit modulus (ntrulike, ntrulike2, qary)
  -qbits   <int>      sample a uniform prime modulus of this bit length
  -alpha   <float>    skew exponent (trg)
  -backend <name>     arbitrary-precision (default) | fixed-width
  -seed    <string>   deterministic seed; system entropy when empty
  -out     <path>     write the basis to a file instead of stdout`)
	os.Exit(1)
}

func main() {
	algo := flag.String("algo", "", "generator algorithm")
	d := flag.Int("d", 0, "dimension parameter")
	bits := flag.Int("bits", 0, "entry bit length")
	bits2 := flag.Int("bits2", 0, "first-entry bit length (simdioph)")
	k := flag.Int("k", 0, "rank parameter (qary)")
	qStr := flag.String("q", "", "explicit modulus")
	qBits := flag.Int("qbits", 0, "modulus bit length")
	alpha := flag.Float64("alpha", 0, "skew exponent (trg)")
	backendStr := flag.String("backend", intmat.ArbitraryPrecision.String(), "integer backend")
	seed := flag.String("seed", "", "deterministic seed")
	out := flag.String("out", "", "output file")
	flag.Usage = usage
	flag.Parse()

	if *algo == "" || *d == 0 {
		usage()
	}

	var mod genlat.Modulus
	if *qStr != "" {
		q, ok := new(big.Int).SetString(*qStr, 10)
		if !ok {
			log.Fatalf("latgen: -q %q is not a decimal integer", *qStr)
		}
		mod.Q = q
	}
	mod.Bits = *qBits

	backend, err := intmat.ParseBackend(*backendStr)
	if err != nil {
		log.Fatalf("latgen: %v", err)
	}
	gen, err := genlat.FromName(*algo, *d, *k, *bits, *bits2, mod, *alpha)
	if err != nil {
		log.Fatalf("latgen: %v", err)
	}

	var rng *genlat.RNG
	if *seed != "" {
		rng, err = genlat.NewRNG([]byte(*seed))
	} else {
		rng, err = genlat.NewSystemRNG()
	}
	if err != nil {
		log.Fatalf("latgen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m, err := genlat.Generate(ctx, gen, backend, rng)
	if err != nil {
		log.Fatalf("latgen: %v", err)
	}
	log.Printf("latgen: %s basis %dx%d, max entry %d bits", gen.Name(), m.Rows(), m.Cols(), m.MaxBitLen())

	if *out != "" {
		if err := m.WriteFile(*out); err != nil {
			log.Fatalf("latgen: write %s: %v", *out, err)
		}
		return
	}
	fmt.Println(m)
}
