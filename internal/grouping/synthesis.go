package grouping

import (
	"fmt"
	"strconv"

	"github.com/sahokun/txhistory/internal/ledger"
)

// synthesize manufactures the rows explorers never export: it nets fungible
// self-sends into a mirrored pair, zeroes gas-relay native rows, and adds the
// wrapped-coin leg of Deposit/Withdraw calls. Runs after every member has
// been added and before classification.
func (g *Group) synthesize(deps Deps) error {
	if g.Network.Name == "zksync2" && g.Native != nil {
		g.Native.ZeroTransfer()
	}

	if err := g.netSelfSends(deps); err != nil {
		return err
	}
	return g.synthesizeWrapped(deps)
}

// netSelfSends rewrites token transfers where the wallet sent to itself: the
// original row becomes the outbound half and a mirrored inbound half is
// appended, so the pair cancels out instead of double counting.
func (g *Group) netSelfSends(deps Deps) error {
	var synthesized []*ledger.Erc20
	for _, r := range g.Erc20 {
		if r.From != g.Wallet || r.From != r.To {
			continue
		}
		origTo := r.To
		quantity := r.Value.Abs()

		r.To = ledger.SelfSentinel
		if err := deps.Parser.Reevaluate(r); err != nil {
			return fmt.Errorf("net self send %s: %w", g.TxHash, err)
		}

		row := []string{
			g.TxHash,
			strconv.FormatInt(g.Timestamp, 10),
			g.DateTime,
			ledger.SelfSentinel,
			origTo,
			quantity.String(),
			r.HistoricalValueUSD,
			r.Contract,
			r.TokenName,
			r.TokenSymbol,
			r.Note,
		}
		mirror, err := g.parseSynthetic(deps, row)
		if err != nil {
			return fmt.Errorf("net self send %s: %w", g.TxHash, err)
		}
		synthesized = append(synthesized, mirror)
	}

	for _, r := range synthesized {
		g.Erc20 = append(g.Erc20, r)
		g.Attrs.Union(r.Attrs)
	}
	return nil
}

// synthesizeWrapped adds the token leg of a wrap or unwrap. Explorers report
// the native coin movement of Deposit/Withdraw against a wrapped-coin
// contract but omit the matching token mint or burn.
func (g *Group) synthesizeWrapped(deps Deps) error {
	tx := g.Native
	if tx == nil {
		return nil
	}
	wt, ok := deps.Wrapped.Find(tx.To)
	if !ok {
		return nil
	}

	var row []string
	switch {
	case tx.Method == "Deposit":
		row = []string{
			g.TxHash,
			strconv.FormatInt(g.Timestamp, 10),
			g.DateTime,
			tx.To,
			tx.From,
			tx.Quantity.Abs().String(),
			tx.HistoricalPrice,
			tx.To,
			wt.Symbol,
			wt.Symbol,
			g.Note,
		}
	case tx.Method == "Withdraw" && len(g.Internal) > 0:
		row = []string{
			g.TxHash,
			strconv.FormatInt(g.Timestamp, 10),
			g.DateTime,
			tx.From,
			tx.To,
			g.Internal[0].Quantity.Abs().String(),
			tx.HistoricalPrice,
			tx.To,
			wt.Symbol,
			wt.Symbol,
			g.Note,
		}
	default:
		return nil
	}

	rec, err := g.parseSynthetic(deps, row)
	if err != nil {
		return fmt.Errorf("synthesize wrapped leg %s: %w", g.TxHash, err)
	}
	g.Erc20 = append(g.Erc20, rec)
	g.Attrs.Union(rec.Attrs)
	return nil
}

// parseSynthetic runs a manufactured row through the ordinary token parser so
// synthesized records get the same attribute and rate treatment as real ones.
func (g *Group) parseSynthetic(deps Deps, row []string) (*ledger.Erc20, error) {
	rec, err := deps.Parser.Parse(ledger.KindErc20, g.Network, g.Wallet, nil, row)
	if err != nil {
		return nil, err
	}
	erc20, ok := rec.(*ledger.Erc20)
	if !ok {
		return nil, fmt.Errorf("synthetic row parsed as %q", rec.Kind())
	}
	return erc20, nil
}
