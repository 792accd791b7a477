package filings

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/seenimoa/edgarai/pkg/models"
)

// form4Document mirrors the subset of the SEC ownership document schema
// this module reads. The primary document of a Form 4 filing is XML.
type form4Document struct {
	XMLName         xml.Name         `xml:"ownershipDocument"`
	ReportingOwners []reportingOwner `xml:"reportingOwner"`
	NonDerivative   struct {
		Transactions []form4Transaction `xml:"nonDerivativeTransaction"`
	} `xml:"nonDerivativeTable"`
}

type reportingOwner struct {
	ID struct {
		Name string `xml:"rptOwnerName"`
	} `xml:"reportingOwnerId"`
}

type form4Transaction struct {
	Date struct {
		Value string `xml:"value"`
	} `xml:"transactionDate"`
	Coding struct {
		Code string `xml:"transactionCode"`
	} `xml:"transactionCoding"`
	Amounts struct {
		Shares struct {
			Value string `xml:"value"`
		} `xml:"transactionShares"`
		PricePerShare struct {
			Value string `xml:"value"`
		} `xml:"transactionPricePerShare"`
	} `xml:"transactionAmounts"`
}

var errNotForm4 = errors.New("document is not a Form 4 ownership document")

// ParseForm4 extracts the reporting owner's name and up to maxTxns
// non-derivative transactions from a Form 4 document.
func ParseForm4(raw []byte, maxTxns int) (string, []models.InsiderTransaction, error) {
	var doc form4Document
	if err := decodeOwnership(raw, &doc); err != nil {
		return "", nil, err
	}

	owner := ""
	if len(doc.ReportingOwners) > 0 {
		owner = strings.TrimSpace(doc.ReportingOwners[0].ID.Name)
	}

	var txns []models.InsiderTransaction
	for _, t := range doc.NonDerivative.Transactions {
		if maxTxns > 0 && len(txns) >= maxTxns {
			break
		}
		txns = append(txns, models.InsiderTransaction{
			TransactionDate: strings.TrimSpace(t.Date.Value),
			TransactionCode: strings.TrimSpace(t.Coding.Code),
			Shares:          parseFloat(t.Amounts.Shares.Value),
			PricePerShare:   parseFloat(t.Amounts.PricePerShare.Value),
		})
	}
	return owner, txns, nil
}

func decodeOwnership(raw []byte, doc *form4Document) error {
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.Strict = false
	if err := decoder.Decode(doc); err != nil {
		return err
	}
	if doc.XMLName.Local != "ownershipDocument" {
		return errNotForm4
	}
	return nil
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
