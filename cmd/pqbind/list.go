package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/remiblancher/pqbind/internal/pqc"
)

// List command flags
var listSymbols bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported algorithms and their artifact sizes",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSymbols, "symbols", false, "Also print the native symbol names")
}

func runList(cmd *cobra.Command, _ []string) error {
	algs := pqc.AllAlgorithms()
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTYPE\tPK\tSK\tCT/SIG\tSS")
	for _, alg := range algs {
		d, err := alg.Descriptor()
		if err != nil {
			return err
		}
		switch d.Type {
		case pqc.TypeKEM:
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
				d.ID, d.Type, d.PublicKeySize, d.SecretKeySize, d.CiphertextSize, d.SharedSecretSize)
		case pqc.TypeSignature:
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t-\n",
				d.ID, d.Type, d.PublicKeySize, d.SecretKeySize, d.SignatureSize)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !listSymbols {
		return nil
	}
	for _, alg := range algs {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", alg)
		for _, op := range operationsFor(alg) {
			name, err := pqc.SymbolName(alg, op)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", op, name)
		}
	}
	return nil
}

func operationsFor(alg pqc.AlgorithmID) []pqc.Operation {
	if alg.IsKEM() {
		return []pqc.Operation{pqc.OpKeypair, pqc.OpEncapsulate, pqc.OpDecapsulate}
	}
	return []pqc.Operation{pqc.OpKeypair, pqc.OpSign, pqc.OpVerify}
}
