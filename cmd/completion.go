package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/allocation"
	"github.com/etnz/allocation/currency"
	"github.com/etnz/allocation/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of every registered subcommand.
//
// The main package calls Complete on it before parsing the flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range groups() {
		for _, c := range cmds {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagPredictors(fs),
				Args:  argPredictor(c),
			}
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Set(commandNames())}
	}
	return root
}

func commandNames() []string {
	var names []string
	for _, cmds := range groups() {
		for _, c := range cmds {
			names = append(names, c.Name())
		}
	}
	return names
}

// flagPredictors predicts the values of the flags in 'fs'.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		res[f.Name] = flagPredictor(f)
	})
	return res
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "class":
		return predict.Set(classNames())
	case "mode":
		return predict.Set{string(allocation.PercentageMode), string(allocation.SetMode), string(allocation.OffMode)}
	case "type":
		return predict.Set{
			string(allocation.ETF), string(allocation.Stock), string(allocation.SingleBond),
			string(allocation.SavingsAccount), string(allocation.CheckingAccount),
			string(allocation.Coin), string(allocation.Property), string(allocation.Other),
		}
	case "portfolio-file":
		return predict.Files("*.json")
	case "settings-file":
		return predict.Files("*.yaml")
	}
	return predict.Something
}

// argPredictor predicts the positional arguments of a subcommand.
func argPredictor(c subcommands.Command) complete.Predictor {
	switch c.Name() {
	case "class":
		return predict.Set(classNames())
	case "target", "set", "remove":
		return complete.PredictFunc(assetIDs)
	case "mass":
		return complete.PredictFunc(func(prefix string) []string {
			var res []string
			for _, name := range append(classNames(), assetIDs(prefix)...) {
				res = append(res, name+"=")
			}
			return res
		})
	case "currency":
		var codes []string
		for _, info := range currency.Supported {
			codes = append(codes, info.Code)
		}
		return predict.Set(codes)
	case "topic":
		return predict.Set(append(docs.Names(), "all"))
	}
	return predict.Nothing
}

func classNames() []string {
	names := make([]string, 0, len(allocation.Classes))
	for _, c := range allocation.Classes {
		names = append(names, string(c))
	}
	return names
}

// assetIDs predicts the asset ids of the allocation file.
func assetIDs(prefix string) []string {
	s, err := allocation.LoadState(*portfolioFile)
	if err != nil {
		return nil
	}
	var ids []string
	for _, a := range s.Assets {
		if strings.HasPrefix(a.ID, prefix) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
