package order

import (
	"errors"

	"comanda-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrIncompleteDistribution = errors.New("distribuição incompleta")

const (
	MinSplitPeople = 2
	MaxSplitPeople = 10
)

// serviceFeeRate - taxa de serviço fixa de 10% aplicada por divisão.
var serviceFeeRate = decimal.NewFromFloat(0.10)

// Split - a parte de uma pessoa na conta.
type Split struct {
	Items []models.OrderItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

func (s *Split) recalcTotal() {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	s.Total = total
}

// Splitter particiona os itens de um pedido entre 2 a 10 pessoas, sem
// perda nem duplicação, e calcula o total de cada parte com a taxa de
// serviço.
type Splitter struct {
	order  *models.Order
	splits []Split
}

func NewSplitter(o *models.Order, people int) *Splitter {
	s := &Splitter{order: o}
	s.SetPeople(people)
	return s
}

// SetPeople ajusta o número de pessoas (limitado a [2,10]). Aumentar
// acrescenta divisões vazias no final; diminuir trunca. Itens já
// atribuídos às divisões truncadas são descartados, então a UI deve
// confirmar antes de reduzir.
func (s *Splitter) SetPeople(n int) {
	if n < MinSplitPeople {
		n = MinSplitPeople
	}
	if n > MaxSplitPeople {
		n = MaxSplitPeople
	}

	if n <= len(s.splits) {
		s.splits = s.splits[:n]
		return
	}
	for len(s.splits) < n {
		s.splits = append(s.splits, Split{Total: decimal.Zero})
	}
}

func (s *Splitter) People() int { return len(s.splits) }

func (s *Splitter) Splits() []Split { return s.splits }

// Unassigned lista, por linha do pedido, a quantidade ainda não
// distribuída entre as divisões.
func (s *Splitter) Unassigned() []models.OrderItem {
	var out []models.OrderItem
	for _, line := range s.order.Items {
		assigned := 0
		for i := range s.splits {
			if j := indexOf(s.splits[i].Items, KeyOf(line)); j >= 0 {
				assigned += s.splits[i].Items[j].Quantity
			}
		}
		if assigned < line.Quantity {
			remaining := line
			remaining.Quantity = line.Quantity - assigned
			out = append(out, remaining)
		}
	}
	return out
}

// Assign atribui qty unidades do item à divisão indicada, fundindo com
// uma linha igual já existente.
func (s *Splitter) Assign(splitIndex int, item models.OrderItem, qty int) {
	if splitIndex < 0 || splitIndex >= len(s.splits) {
		return
	}
	if qty <= 0 {
		qty = 1
	}

	assigned := item
	assigned.Quantity = qty
	s.splits[splitIndex].Items = MergeOrAppend(s.splits[splitIndex].Items, assigned)
	s.splits[splitIndex].recalcTotal()
}

// Unassign devolve qty unidades da linha itemIndex da divisão; a linha é
// removida quando chega a zero.
func (s *Splitter) Unassign(splitIndex, itemIndex, qty int) {
	if splitIndex < 0 || splitIndex >= len(s.splits) {
		return
	}
	sp := &s.splits[splitIndex]
	if itemIndex < 0 || itemIndex >= len(sp.Items) {
		return
	}
	if qty <= 0 {
		qty = 1
	}

	sp.Items = AdjustQuantity(sp.Items, KeyOf(sp.Items[itemIndex]), -qty)
	sp.recalcTotal()
}

// ServiceFee - 10% exatos do total não arredondado da divisão.
func ServiceFee(total decimal.Decimal) decimal.Decimal {
	return total.Mul(serviceFeeRate)
}

// Commit valida a conservação linha a linha (cada linha do pedido
// exatamente distribuída, nada atribuído fora do pedido) e produz um
// pedido filho por divisão: id novo, taxa de serviço de 10%, referência
// ao pai e às divisões irmãs, status herdado do pai. O pedido pai não é
// alterado. Em caso de violação nada é produzido.
func (s *Splitter) Commit() ([]models.Order, error) {
	// cada linha do pedido precisa estar integralmente atribuída
	for _, line := range s.order.Items {
		assigned := 0
		for i := range s.splits {
			if j := indexOf(s.splits[i].Items, KeyOf(line)); j >= 0 {
				assigned += s.splits[i].Items[j].Quantity
			}
		}
		if assigned != line.Quantity {
			return nil, ErrIncompleteDistribution
		}
	}

	// nada atribuído que não exista no pedido
	for i := range s.splits {
		for _, it := range s.splits[i].Items {
			if indexOf(s.order.Items, KeyOf(it)) < 0 {
				return nil, ErrIncompleteDistribution
			}
		}
	}

	ids := make([]string, len(s.splits))
	for i := range ids {
		ids[i] = uuid.NewString()
	}

	children := make([]models.Order, 0, len(s.splits))
	for i, sp := range s.splits {
		siblings := make(models.StringList, 0, len(ids)-1)
		for j, id := range ids {
			if j != i {
				siblings = append(siblings, id)
			}
		}

		items := make([]models.OrderItem, len(sp.Items))
		for j, it := range sp.Items {
			it.ID = 0
			it.OrderID = ids[i]
			items[j] = it
		}

		parentID := s.order.ID
		children = append(children, models.Order{
			ID:            ids[i],
			TableNumber:   s.order.TableNumber,
			Items:         items,
			Status:        s.order.Status,
			Total:         sp.Total,
			ServiceFee:    ServiceFee(sp.Total),
			ParentOrderID: &parentID,
			SplitWith:     siblings,
		})
	}

	return children, nil
}
