package order

import (
	"testing"

	"comanda-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitOrder() *models.Order {
	o := &models.Order{
		ID:          "a3a84c20-0c5d-4a62-9f3d-000000000001",
		TableNumber: "12",
		Status:      models.OrderDelivered,
		Items: []models.OrderItem{
			picanha(2, "", models.MeatMedium),
			refri(3),
		},
	}
	o.RecalcTotal()
	return o
}

func TestSetPeople(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"abaixo do mínimo vira 2", 1, 2},
		{"mínimo", 2, 2},
		{"meio da faixa", 5, 5},
		{"máximo", 10, 10},
		{"acima do máximo vira 10", 15, 10},
		{"zero vira 2", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplitter(splitOrder(), tt.n)
			assert.Equal(t, tt.want, s.People())
			assert.Len(t, s.Splits(), tt.want)
		})
	}
}

func TestSetPeople_TruncateDropsAssignments(t *testing.T) {
	o := splitOrder()
	s := NewSplitter(o, 3)
	s.Assign(2, o.Items[0], 2)

	s.SetPeople(2)
	require.Equal(t, 2, s.People())

	// as unidades atribuídas à divisão truncada voltam a ficar pendentes
	unassigned := s.Unassigned()
	require.Len(t, unassigned, 2)
	assert.Equal(t, 2, unassigned[0].Quantity)
	assert.Equal(t, 3, unassigned[1].Quantity)
}

func TestAssignUnassign(t *testing.T) {
	o := splitOrder()
	s := NewSplitter(o, 2)

	s.Assign(0, o.Items[0], 1)
	s.Assign(0, o.Items[0], 1)
	require.Len(t, s.Splits()[0].Items, 1, "mesma chave funde na divisão")
	assert.Equal(t, 2, s.Splits()[0].Items[0].Quantity)
	assert.True(t, s.Splits()[0].Total.Equal(decimal.NewFromFloat(179.80)))

	s.Unassign(0, 0, 1)
	assert.Equal(t, 1, s.Splits()[0].Items[0].Quantity)
	assert.True(t, s.Splits()[0].Total.Equal(decimal.NewFromFloat(89.90)))

	s.Unassign(0, 0, 1)
	assert.Empty(t, s.Splits()[0].Items)
	assert.True(t, s.Splits()[0].Total.IsZero())
}

func TestUnassigned(t *testing.T) {
	o := splitOrder()
	s := NewSplitter(o, 2)

	unassigned := s.Unassigned()
	require.Len(t, unassigned, 2)
	assert.Equal(t, 2, unassigned[0].Quantity)
	assert.Equal(t, 3, unassigned[1].Quantity)

	s.Assign(0, o.Items[0], 2)
	s.Assign(1, o.Items[1], 1)

	unassigned = s.Unassigned()
	require.Len(t, unassigned, 1)
	assert.Equal(t, uint(2), unassigned[0].MenuItemID)
	assert.Equal(t, 2, unassigned[0].Quantity)
}

func TestServiceFee(t *testing.T) {
	tests := []struct {
		total string
		want  string
	}{
		{"89.90", "8.99"},
		{"100.00", "10.00"},
		{"0", "0"},
		{"33.33", "3.333"},
	}

	for _, tt := range tests {
		total := decimal.RequireFromString(tt.total)
		want := decimal.RequireFromString(tt.want)
		assert.True(t, ServiceFee(total).Equal(want), "fee(%s) = %s", tt.total, ServiceFee(total))
	}
}

func TestCommit_IncompleteDistribution(t *testing.T) {
	o := splitOrder()

	t.Run("nada atribuído", func(t *testing.T) {
		s := NewSplitter(o, 2)
		children, err := s.Commit()
		require.ErrorIs(t, err, ErrIncompleteDistribution)
		assert.Nil(t, children)
	})

	t.Run("linha parcialmente atribuída", func(t *testing.T) {
		s := NewSplitter(o, 2)
		s.Assign(0, o.Items[0], 2)
		s.Assign(1, o.Items[1], 2)
		_, err := s.Commit()
		require.ErrorIs(t, err, ErrIncompleteDistribution)
	})

	t.Run("atribuição acima da quantidade do pedido", func(t *testing.T) {
		s := NewSplitter(o, 2)
		s.Assign(0, o.Items[0], 2)
		s.Assign(0, o.Items[1], 3)
		s.Assign(1, o.Items[1], 1)
		_, err := s.Commit()
		require.ErrorIs(t, err, ErrIncompleteDistribution)
	})

	t.Run("item que não existe no pedido", func(t *testing.T) {
		s := NewSplitter(o, 2)
		s.Assign(0, o.Items[0], 2)
		s.Assign(0, o.Items[1], 3)
		s.Assign(1, models.OrderItem{MenuItemID: 99, Name: "Sobremesa", Price: decimal.NewFromInt(12), Quantity: 1}, 1)
		_, err := s.Commit()
		require.ErrorIs(t, err, ErrIncompleteDistribution)
	})
}

func TestCommit_Conservation(t *testing.T) {
	o := splitOrder()
	s := NewSplitter(o, 3)

	s.Assign(0, o.Items[0], 1)
	s.Assign(1, o.Items[0], 1)
	s.Assign(1, o.Items[1], 1)
	s.Assign(2, o.Items[1], 2)

	children, err := s.Commit()
	require.NoError(t, err)
	require.Len(t, children, 3)

	// cada unidade do pai aparece exatamente uma vez nos filhos
	for _, line := range o.Items {
		total := 0
		for _, child := range children {
			if i := indexOf(child.Items, KeyOf(line)); i >= 0 {
				total += child.Items[i].Quantity
			}
		}
		assert.Equal(t, line.Quantity, total, "linha %s", line.Name)
	}

	// a soma dos totais dos filhos é o total do pai
	sum := decimal.Zero
	for _, child := range children {
		sum = sum.Add(child.Total)
	}
	assert.True(t, sum.Equal(o.Total), "soma %s, pai %s", sum, o.Total)
}

func TestCommit_ChildOrders(t *testing.T) {
	o := splitOrder()
	s := NewSplitter(o, 2)
	s.Assign(0, o.Items[0], 2)
	s.Assign(1, o.Items[1], 3)

	children, err := s.Commit()
	require.NoError(t, err)
	require.Len(t, children, 2)

	seen := map[string]bool{}
	for _, child := range children {
		require.NotEmpty(t, child.ID)
		assert.NotEqual(t, o.ID, child.ID)
		assert.False(t, seen[child.ID], "ids dos filhos devem ser únicos")
		seen[child.ID] = true

		require.NotNil(t, child.ParentOrderID)
		assert.Equal(t, o.ID, *child.ParentOrderID)
		assert.Equal(t, o.TableNumber, child.TableNumber)
		assert.Equal(t, o.Status, child.Status)
		assert.True(t, child.ServiceFee.Equal(ServiceFee(child.Total)))

		require.Len(t, child.SplitWith, 1)
		for _, it := range child.Items {
			assert.Equal(t, child.ID, it.OrderID)
			assert.Zero(t, it.ID)
		}
	}

	// split_with referencia o irmão, não a si mesmo
	assert.Equal(t, children[1].ID, children[0].SplitWith[0])
	assert.Equal(t, children[0].ID, children[1].SplitWith[0])

	// 2x89.90 -> total 179.80, taxa 17.98
	assert.True(t, children[0].Total.Equal(decimal.NewFromFloat(179.80)))
	assert.True(t, children[0].ServiceFee.Equal(decimal.NewFromFloat(17.98)))
	// 3x7.50 -> total 22.50, taxa 2.25
	assert.True(t, children[1].Total.Equal(decimal.NewFromFloat(22.50)))
	assert.True(t, children[1].ServiceFee.Equal(decimal.NewFromFloat(2.25)))

	// o pai não é alterado
	assert.Nil(t, o.ParentOrderID)
	assert.Len(t, o.Items, 2)
}

func TestBuildSplitter(t *testing.T) {
	t.Run("remonta a partição e aceita o commit", func(t *testing.T) {
		o := splitOrder()
		splitter, err := buildSplitter(o, [][]SplitItemRequest{
			{{MenuItemID: 1, MeatPoint: models.MeatMedium, Quantity: 2}},
			{{MenuItemID: 2, Quantity: 3}},
		})
		require.NoError(t, err)

		children, err := splitter.Commit()
		require.NoError(t, err)
		require.Len(t, children, 2)
	})

	t.Run("quantidade zero é rejeitada", func(t *testing.T) {
		o := splitOrder()
		_, err := buildSplitter(o, [][]SplitItemRequest{
			{{MenuItemID: 1, MeatPoint: models.MeatMedium, Quantity: 0}},
			{{MenuItemID: 2, Quantity: 3}},
		})
		require.ErrorIs(t, err, errInvalidSplitQuantity)
	})

	t.Run("quantidade negativa é rejeitada", func(t *testing.T) {
		o := splitOrder()
		_, err := buildSplitter(o, [][]SplitItemRequest{
			{{MenuItemID: 1, MeatPoint: models.MeatMedium, Quantity: -2}},
			{{MenuItemID: 2, Quantity: 3}},
		})
		require.ErrorIs(t, err, errInvalidSplitQuantity)
	})

	t.Run("item fora do pedido é rejeitado", func(t *testing.T) {
		o := splitOrder()
		_, err := buildSplitter(o, [][]SplitItemRequest{
			{{MenuItemID: 99, Quantity: 1}},
			{{MenuItemID: 2, Quantity: 3}},
		})
		require.ErrorIs(t, err, ErrIncompleteDistribution)
	})
}

func TestCommit_AllToOnePerson(t *testing.T) {
	o := &models.Order{
		ID:          "a3a84c20-0c5d-4a62-9f3d-000000000002",
		TableNumber: "5",
		Status:      models.OrderDelivered,
		Items:       []models.OrderItem{picanha(1, "", models.MeatMedium)},
	}
	o.RecalcTotal()

	s := NewSplitter(o, 2)
	s.Assign(0, o.Items[0], 1)

	children, err := s.Commit()
	require.NoError(t, err)
	require.Len(t, children, 2)

	assert.True(t, children[0].Total.Equal(decimal.NewFromFloat(89.90)))
	assert.True(t, children[0].ServiceFee.Equal(decimal.NewFromFloat(8.99)))
	withFee := children[0].Total.Add(children[0].ServiceFee)
	assert.True(t, withFee.Equal(decimal.NewFromFloat(98.89)), "total com taxa %s", withFee)

	// a divisão vazia vira um pedido filho de total zero
	assert.True(t, children[1].Total.IsZero())
	assert.True(t, children[1].ServiceFee.IsZero())
	assert.Empty(t, children[1].Items)
}
