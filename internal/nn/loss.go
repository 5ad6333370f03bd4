package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	preds := make([]*autodiff.Value, len(xs))
//	for i, x := range xs {
//	    preds[i] = model.Call(x)
//	}
//	loss := nn.MSELoss(preds, nn.Values(ys...))
func MSELoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	checkLengths("MSELoss", predictions, targets)

	terms := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = p.Sub(targets[i]).Pow(2)
	}
	return mean(terms)
}

// HingeLoss computes the max-margin loss mean(relu(1 - yᵢ·ŷᵢ)).
//
// Targets are expected in {-1, +1}.
func HingeLoss(predictions, targets []*autodiff.Value) *autodiff.Value {
	checkLengths("HingeLoss", predictions, targets)

	terms := make([]*autodiff.Value, len(predictions))
	for i, p := range predictions {
		terms[i] = autodiff.Scalar(1).Sub(targets[i].Mul(p)).ReLU()
	}
	return mean(terms)
}

// L2Penalty returns alpha * Σ p² over params.
func L2Penalty(params []*autodiff.Value, alpha float64) *autodiff.Value {
	squares := make([]*autodiff.Value, len(params))
	for i, p := range params {
		squares[i] = p.Mul(p)
	}
	return autodiff.Sum(autodiff.Scalar(0), squares...).MulScalar(alpha)
}

func mean(terms []*autodiff.Value) *autodiff.Value {
	return autodiff.Sum(autodiff.Scalar(0), terms...).MulScalar(1.0 / float64(len(terms)))
}

func checkLengths(name string, predictions, targets []*autodiff.Value) {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("%s: %d predictions vs %d targets", name, len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic(name + ": empty input")
	}
}
