// Copyright 2022 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// plan-tool reads a serialized wire plan, converts it to an engine
// plan and prints the operator tree.
//
// Usage: plan-tool [-config plan-tool.toml] plan.bin
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	proto "github.com/gogo/protobuf/proto"
	"go.uber.org/zap"

	"github.com/Intel-bigdata/velox/pkg/logutil"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/substrait"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

type config struct {
	Log logutil.LogConfig `toml:"log"`
	// Extensions lists extra catalog files loaded after the embedded
	// ones.
	Extensions []string `toml:"extensions"`
}

func main() {
	configFile := flag.String("config", "", "toml config file")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file] plan.bin\n", os.Args[0])
		os.Exit(2)
	}

	var cfg config
	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "parse config %s: %v\n", *configFile, err)
			os.Exit(1)
		}
	}
	logutil.SetupGlobalLogger(&cfg.Log)

	ctx := context.Background()
	// The catalog is loaded even though wire-to-engine conversion
	// resolves functions from the plan itself: a broken catalog or
	// extra file should fail fast here.
	if _, err := substrait.LoadExtensionFiles(ctx, cfg.Extensions...); err != nil {
		logutil.Fatal("load extensions", zap.Error(err))
	}

	planFile := flag.Arg(0)
	data, err := os.ReadFile(planFile)
	if err != nil {
		logutil.Fatal("read plan", zap.String("file", planFile), zap.Error(err))
	}
	var plan wire.Plan
	if err := proto.Unmarshal(data, &plan); err != nil {
		logutil.Fatal("decode plan", zap.String("file", planFile), zap.Error(err))
	}

	conv := substrait.NewFromWireConverter()
	root, err := conv.FromWirePlan(ctx, &plan)
	if err != nil {
		logutil.Fatal("convert plan", zap.String("file", planFile), zap.Error(err))
	}

	logutil.Info("converted plan",
		zap.String("file", planFile),
		zap.Int("functions", len(plan.Extensions)),
		zap.Int("scans_with_splits", len(conv.SplitInfos())))
	printNode(root, 0)
	for id, split := range conv.SplitInfos() {
		fmt.Printf("splits for node %s: %d files (%s)\n", id, len(split.Paths), split.Format)
	}
}

func printNode(node plannode.PlanNode, depth int) {
	fmt.Printf("%s%s[%s] -> %s\n",
		strings.Repeat("  ", depth), node.Name(), node.ID(), node.OutputType())
	for _, src := range node.Sources() {
		printNode(src, depth+1)
	}
}
