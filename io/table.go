package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/effarea"
)

const resultsHeader = "# radius height theta samples hits area area_err disk_area\n"

// ReadCases reads the cylinders listed in the given whitespace-separated
// column file.
func ReadCases(fname string, radiusCol, heightCol int) ([]effarea.Case, error) {
	cols, err := table.ReadTable(fname, []int{ radiusCol, heightCol }, nil)
	if err != nil { return nil, err }

	rs, hs := cols[0], cols[1]
	if len(rs) != len(hs) {
		return nil, fmt.Errorf(
			"Radius and height columns of %s have different lengths, %d " +
				"and %d.", fname, len(rs), len(hs),
		)
	}

	cases := make([]effarea.Case, len(rs))
	for i := range cases {
		cases[i] = effarea.Case{ Radius: rs[i], Height: hs[i] }
	}
	return cases, nil
}

// WriteResults writes one line per result to w, in the column order given by
// the header line.
func WriteResults(w io.Writer, results []effarea.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(resultsHeader); err != nil { return err }

	bs := []byte{}
	for i := range results {
		res := &results[i]
		bs = bs[:0]
		bs = appendFloat(bs, res.Radius)
		bs = appendFloat(bs, res.Height)
		bs = appendFloat(bs, res.Theta)
		bs = strconv.AppendInt(bs, int64(res.Samples), 10)
		bs = append(bs, ' ')
		bs = strconv.AppendInt(bs, int64(res.Hits), 10)
		bs = append(bs, ' ')
		bs = appendFloat(bs, res.Area)
		bs = appendFloat(bs, res.StdErr())
		bs = strconv.AppendFloat(bs, res.DiskArea(), 'g', -1, 64)
		bs = append(bs, '\n')
		if _, err := bw.Write(bs); err != nil { return err }
	}

	return bw.Flush()
}

func appendFloat(bs []byte, x float64) []byte {
	bs = strconv.AppendFloat(bs, x, 'g', -1, 64)
	return append(bs, ' ')
}

// WriteResultsFile writes results to the named file with WriteResults.
func WriteResultsFile(fname string, results []effarea.Result) error {
	f, err := os.Create(fname)
	if err != nil { return err }
	if err = WriteResults(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
