package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xmlsmith/xmlsmith/pkg/document"
	"github.com/xmlsmith/xmlsmith/pkg/query"
	"github.com/xmlsmith/xmlsmith/pkg/util"
)

var (
	queryAllMatches bool
	queryAsInt      bool
	queryEncoding   string
)

var queryCmd = &cobra.Command{
	Use:   "query FILE XPATH",
	Short: "Evaluate an XPath expression against an XML file",
	Long: `Parses the file and evaluates the XPath expression against its root.

By default the text content of the first matching element is printed.
Use --all to print the text of every match, or --int to parse the single
match as a base-10 integer.

Namespace processing is disabled: tags match by their raw name, prefix
included.`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&queryAllMatches, "all", false, "Print the text of every matching element")
	queryCmd.Flags().BoolVar(&queryAsInt, "int", false, "Parse the matched value as a base-10 integer")
	queryCmd.Flags().StringVar(&queryEncoding, "encoding", document.DefaultEncoding, "IANA charset of the input file")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	path, expr := args[0], args[1]

	log := newLogger()
	loader := document.NewLoader()
	loader.SetLogger(log)
	doc, err := loader.ParseFile(path, &document.ParseOptions{Encoding: queryEncoding})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case queryAllMatches:
		matches, err := query.All(&doc.Element, expr)
		if err != nil {
			return err
		}
		for _, el := range matches {
			fmt.Fprintln(out, el.Text())
		}
	case queryAsInt:
		n, err := query.Int(&doc.Element, expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
	default:
		s, err := query.Text(&doc.Element, expr)
		if err != nil {
			return err
		}
		log.Debug("matched", "path", expr, "value", util.TruncateValue(s, 0))
		fmt.Fprintln(out, s)
	}
	return nil
}
