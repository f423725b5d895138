package ledger

import "github.com/sahokun/txhistory/internal/domain"

// Erc721 is a non-fungible token transfer; the on-chain quantity is always 1.
type Erc721 struct {
	Base
	TokenID     string
	TokenName   string
	TokenSymbol string
	Quantity    int
}

func (*Erc721) Kind() Kind { return KindErc721 }

func (t *Erc721) evaluateAttributes() {
	if t.Wallet == t.To {
		t.Attrs.Add(domain.AttrIncome)
	}
	if t.Wallet == t.From {
		t.Attrs.Add(domain.AttrOutcome)
	}
	if t.From == SelfSentinel || t.To == SelfSentinel {
		t.Attrs.Add(domain.AttrSelf)
	}
}

func (t *Erc721) calc() {
	t.Attrs = domain.AttributeSet{}
	t.evaluateAttributes()
	t.Trade = ""
}

// Erc1155 is a semi-fungible token transfer; quantity may exceed 1.
type Erc1155 struct {
	Base
	TokenID     string
	TokenName   string
	TokenSymbol string
	Quantity    int
}

func (*Erc1155) Kind() Kind { return KindErc1155 }

func (t *Erc1155) evaluateAttributes() {
	if t.Wallet == t.To {
		t.Attrs.Add(domain.AttrIncome)
	}
	if t.Wallet == t.From {
		t.Attrs.Add(domain.AttrOutcome)
	}
}

func (t *Erc1155) calc() {
	t.Attrs = domain.AttributeSet{}
	t.evaluateAttributes()
	t.Trade = ""
}
