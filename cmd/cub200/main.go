// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// cub200 loads the CUB-200-2011 dataset and prints a summary of the train and test partitions.
//
// Example:
//
//	cub200 -data=~/work/cub200 -download -size=256 -crop=224 -cache=~/work/cub200/cache
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gomlx/cub200/examples/cub200"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagDataDir   = flag.String("data", "~/work/cub200", "Directory where the CUB_200_2011 directory is (or is downloaded to).")
	flagDownload  = flag.Bool("download", false, "Download and untar the dataset if it is not in --data yet.")
	flagSize      = flag.Int("size", cub200.DefaultSize, "Length of the short side images are resized to.")
	flagCrop      = flag.String("crop", cub200.DefaultCropSize.String(), "Center crop of test images, \"WxH\" or a single number.")
	flagTrainCrop = flag.String("train_crop", "", "Center crop of train images, \"WxH\" or a single number. Defaults to --size x --size.")
	flagAlign     = flag.String("align", "id", "How images are matched to labels: \"id\" uses images.txt, "+
		"\"positional\" matches the sorted images directory to the rows of the labels file.")
	flagFilter   = flag.String("filter", cub200.DefaultFilter, "Resampling filter, one of "+strings.Join(cub200.FilterNames(), ", ")+".")
	flagMaxValue = flag.Float64("max_value", 255, "Value of a saturated channel: 255 keeps the original scale, 1 normalizes to [0, 1].")
	flagMax      = flag.Int("max", 0, "If > 0, load at most this many examples per partition.")
	flagCache    = flag.String("cache", "", "If set, directory where loaded partitions are cached.")
	flagClasses  = flag.Bool("classes", false, "List the class names.")
	flagNoBar    = flag.Bool("no_bar", false, "Disable the progress bar.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if len(flag.Args()) > 0 {
		klog.Errorf("Unexpected arguments %q. See 'cub200 -help'.", flag.Args())
		os.Exit(1)
	}

	if *flagDownload {
		must.M(cub200.Download(*flagDataDir))
	}
	cfg := buildConfig()
	train, test := must.M2(cub200.Load(cfg))
	fmt.Println(titleStyle.Render("CUB-200-2011"))
	fmt.Println(configTable(cfg).Render())
	fmt.Println(splitsTable(train, test).Render())

	if *flagClasses {
		names := must.M1(cub200.LoadClassNames(*flagDataDir))
		fmt.Println(titleStyle.Render("Classes"))
		fmt.Println(classesTable(names, train, test).Render())
	}
}

// buildConfig maps the flags to a cub200.Config.
func buildConfig() *cub200.Config {
	testCrop := must.M1(cub200.ParseCropSize(*flagCrop))
	trainCrop := cub200.Square(*flagSize)
	if *flagTrainCrop != "" {
		trainCrop = must.M1(cub200.ParseCropSize(*flagTrainCrop))
	}
	cfg := cub200.DefaultConfig(*flagDataDir).
		WithSize(*flagSize).
		WithCrops(trainCrop, testCrop).
		WithAlignment(must.M1(cub200.ParseAlignment(*flagAlign))).
		WithFilter(*flagFilter).
		WithMaxValue(*flagMaxValue).
		WithMaxExamples(*flagMax).
		WithCache(*flagCache).
		WithProgressBar(!*flagNoBar)
	must.M(cfg.Validate())
	return cfg
}
