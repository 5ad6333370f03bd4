// Package main provides the micrograd demo CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
)

const version = "v0.1.0-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		usage(w)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(w, "micrograd %s\n", version)
		return nil
	case "check":
		return runCheck(w)
	case "train":
		return runTrain(args[1:], w)
	default:
		usage(w)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "micrograd - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  check      Evaluate the reference expression and its gradients")
	fmt.Fprintln(w, "  train      Fit a small MLP to a four-sample toy dataset")
}

// runCheck evaluates the reference expression and prints g, a.grad and b.grad.
func runCheck(w io.Writer) error {
	a := autodiff.NewValue(-4.0)
	b := autodiff.NewValue(2.0)

	c := a.Add(b)
	d := a.Mul(b).Add(b.Pow(3))
	c = c.Add(c.AddScalar(1))
	c = c.Add(autodiff.Scalar(1).Add(c).Add(a.Neg()))
	d = d.Add(d.MulScalar(2).Add(b.Add(a).ReLU()))
	d = d.Add(autodiff.Scalar(3).Mul(d).Add(b.Sub(a).ReLU()))
	e := c.Sub(d)
	f := e.Pow(2)
	g := f.DivScalar(2.0).Add(autodiff.Scalar(10.0).Div(f))

	tape := autodiff.Record(g)
	tape.Backward()
	defer tape.Release()

	fmt.Fprintf(w, "graph: %d nodes\n", tape.Len())
	fmt.Fprintf(w, "g = %.4f\n", g.Data())
	fmt.Fprintf(w, "a = %v\n", a)
	fmt.Fprintf(w, "b = %v\n", b)
	return nil
}

type trainConfig struct {
	seed  int64
	steps int
	lr    float64
	alpha float64
	loss  string
}

func parseTrainFlags(args []string, w io.Writer) (trainConfig, error) {
	var cfg trainConfig
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Int64Var(&cfg.seed, "seed", 1337, "Seed for weight initialization")
	fs.IntVar(&cfg.steps, "steps", 100, "Number of gradient steps")
	fs.Float64Var(&cfg.lr, "lr", 0.05, "Learning rate")
	fs.Float64Var(&cfg.alpha, "alpha", 0, "L2 regularization strength")
	fs.StringVar(&cfg.loss, "loss", "mse", "Loss function: mse or hinge")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("train: %w", err)
	}
	if cfg.steps < 1 {
		return cfg, errors.New("train: -steps must be positive")
	}
	if cfg.loss != "mse" && cfg.loss != "hinge" {
		return cfg, fmt.Errorf("train: unknown loss %q", cfg.loss)
	}
	return cfg, nil
}

func runTrain(args []string, w io.Writer) error {
	cfg, err := parseTrainFlags(args, w)
	if err != nil {
		return err
	}

	xs := [][]float64{
		{2, 3, -1},
		{3, -1, 0.5},
		{0.5, 1, 1},
		{1, 1, -1},
	}
	ys := []float64{1, -1, -1, 1}

	model := nn.NewMLP(3, []int{4, 4, 1}, nn.NewRand(cfg.seed))
	fmt.Fprintf(w, "model: %v\n", model)
	fmt.Fprintf(w, "parameters: %d\n", nn.NumParameters(model))

	var preds []*autodiff.Value
	for step := 0; step < cfg.steps; step++ {
		preds = make([]*autodiff.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Call(nn.Values(x...))
		}

		var loss *autodiff.Value
		if cfg.loss == "hinge" {
			loss = nn.HingeLoss(preds, nn.Values(ys...))
		} else {
			loss = nn.MSELoss(preds, nn.Values(ys...))
		}
		if cfg.alpha > 0 {
			loss = loss.Add(nn.L2Penalty(model.Parameters(), cfg.alpha))
		}

		nn.ZeroGrad(model)
		tape := autodiff.Record(loss)
		tape.Backward()
		if bad := tape.NonFinite(); len(bad) > 0 {
			tape.Release()
			return fmt.Errorf("train: step %d: %d non-finite nodes", step, len(bad))
		}
		tape.Release()

		for _, p := range model.Parameters() {
			p.SetData(p.Data() - cfg.lr*p.Grad())
		}

		if step%10 == 0 || step == cfg.steps-1 {
			fmt.Fprintf(w, "step %3d loss %.6f\n", step, loss.Data())
		}
	}

	fmt.Fprint(w, "predictions:")
	for _, p := range preds {
		fmt.Fprintf(w, " %.4f", p.Data())
	}
	fmt.Fprintln(w)
	return nil
}
