// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

/*
octopus-pairhmm-bench aligns every read of a FASTQ file against a window of
a FASTA reference and reports the banded pair-HMM score (and, optionally,
the recovered alignment) for each.
*/

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/octopus-varcall/pairhmm/encoding/fasta"
	"github.com/octopus-varcall/pairhmm/encoding/fastq"
	"github.com/octopus-varcall/pairhmm/internal/refio"
	"github.com/octopus-varcall/pairhmm/pairhmm"
)

var (
	seqName   = flag.String("seq", "", "Reference sequence name to align reads against")
	start     = flag.Uint64("start", 0, "0-based start offset of the aligned region within -seq")
	gapOpen   = flag.Int("gap-open", 40, "Scalar gap-open penalty")
	gapExtend = flag.Int("gap-extend", 1, "Scalar gap-extend penalty")
	nucPrior  = flag.Int("nuc-prior", 2, "Nucleotide prior penalty added to every insertion")
	align     = flag.Bool("align", false, "Recover and print the gapped alignment in addition to the score")
	wide      = flag.Bool("wide", false, "Prefer the 16-lane backend if the running CPU supports it")
)

func usage() {
	fmt.Printf("Usage: %s [OPTIONS] fapath fastqpath\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func chooseBackend() (pairhmm.Backend, error) {
	backends := pairhmm.AvailableBackends()
	if len(backends) == 0 {
		return nil, fmt.Errorf("no pairhmm backend available on this CPU")
	}
	if *wide {
		for _, b := range backends {
			if b.Width() == 16 {
				return b, nil
			}
		}
	}
	return backends[0], nil
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	allArgs := flag.Args()
	nPositionalArgs := flag.NArg()
	positionalArgs := allArgs[len(allArgs)-nPositionalArgs:]
	if nPositionalArgs != 2 {
		if nPositionalArgs < 2 {
			log.Fatalf("Missing positional arguments (fapath and fastqpath required); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		} else {
			log.Fatalf("Too many positional arguments (only fapath and fastqpath expected); please check flag syntax: '%s'", strings.Join(positionalArgs, " "))
		}
	}
	if *seqName == "" {
		log.Fatalf("-seq is required")
	}

	backend, err := chooseBackend()
	if err != nil {
		log.Fatalf("%v", err)
	}
	engine, err := pairhmm.NewEngine(backend)
	if err != nil {
		log.Fatalf("constructing engine: %v", err)
	}
	log.Printf("using backend %s (width %d)", backend.Name(), backend.Width())

	faFile, err := os.Open(positionalArgs[0])
	if err != nil {
		log.Fatalf("opening %s: %v", positionalArgs[0], err)
	}
	defer faFile.Close()
	ref, err := fasta.New(faFile)
	if err != nil {
		log.Fatalf("parsing %s: %v", positionalArgs[0], err)
	}

	fqFile, err := os.Open(positionalArgs[1])
	if err != nil {
		log.Fatalf("opening %s: %v", positionalArgs[1], err)
	}
	defer fqFile.Close()
	scanner := fastq.NewScanner(fqFile, fastq.ID|fastq.Seq|fastq.Qual)

	var read fastq.Read
	for scanner.Scan(&read) {
		target, quality, err := refio.TargetAndQuality(&read)
		if err != nil {
			log.Printf("skipping %s: %v", read.ID, err)
			continue
		}
		truth, err := refio.TruthWindow(ref, *seqName, *start, *start+uint64(len(target)), engine.Width())
		if err != nil {
			log.Printf("skipping %s: %v", read.ID, err)
			continue
		}
		in := &pairhmm.Input{
			Truth:     truth,
			Target:    target,
			Quality:   quality,
			GapOpen:   pairhmm.ScalarGapPenalty(*gapOpen),
			GapExtend: pairhmm.ScalarGapPenalty(*gapExtend),
			NucPrior:  int16(*nucPrior),
		}
		if !*align {
			score, err := engine.ScoreOnly(in)
			if err != nil {
				log.Fatalf("aligning %s: %v", read.ID, err)
			}
			fmt.Printf("%s\t%d\n", read.ID, score)
			continue
		}
		score, firstPos, alignedTruth, alignedQuery, err := engine.ScoreAndAlign(in)
		if err != nil {
			log.Fatalf("aligning %s: %v", read.ID, err)
		}
		if firstPos < 0 {
			fmt.Printf("%s\t%d\t-\t-\n", read.ID, score)
			continue
		}
		fmt.Printf("%s\t%d\t%d\t%s\t%s\n", read.ID, score, firstPos, alignedTruth, alignedQuery)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading %s: %v", positionalArgs[1], err)
	}
}
