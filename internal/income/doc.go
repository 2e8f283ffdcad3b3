// Package income evaluates the smallholder cocoa farm income model.
//
// The model is a closed-form equation of farm size and six scalar parameters. Evaluate sweeps it
// across an ordered list of farm sizes and returns one DataPoint per size. Labor up to the owner's
// own capacity is unpaid; only the days beyond it are hired at the daily labor cost.
package income
