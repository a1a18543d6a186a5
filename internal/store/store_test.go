package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence/memory"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%04d", n)
	}
}

type recorder struct {
	ops              map[string]int
	recent, archived int
}

func (r *recorder) StoreOperation(op string, err error) {
	key := op + ":ok"
	if err != nil {
		key = op + ":error"
	}
	r.ops[key]++
}

func (r *recorder) InvoicePartition(recent, archived int) {
	r.recent, r.archived = recent, archived
}

type fixture struct {
	store   *Store
	backend *memory.Store
	clock   *fakeClock
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		backend: memory.New(),
		clock:   &fakeClock{t: time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)},
	}
	opts = append([]Option{WithClock(f.clock.Now), WithIDGenerator(sequentialIDs())}, opts...)
	s, err := Open(context.Background(), f.backend, opts...)
	require.NoError(t, err)
	f.store = s
	return f
}

func (f *fixture) addProduct(t *testing.T, name string, price, tax float64) string {
	t.Helper()
	id, err := f.store.AddProduct(context.Background(), models.ProductInput{Name: name, Price: price, TaxRate: tax, Unit: "hour"})
	require.NoError(t, err)
	return id
}

func (f *fixture) addClient(t *testing.T, name string) string {
	t.Helper()
	id, err := f.store.AddClient(context.Background(), models.ClientInput{
		CompanyName: name,
		Address:     models.Address{Street: "1 Main St", City: "Pune", Country: "India"},
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) addInvoice(t *testing.T, clientID, productID string, qty int) models.Invoice {
	t.Helper()
	inv, err := f.store.AddInvoice(context.Background(), models.InvoiceDraft{
		ClientID: clientID,
		Items:    []models.LineDraft{{ProductID: productID, Quantity: qty}},
	})
	require.NoError(t, err)
	return inv
}

func TestOpen_NilBackend(t *testing.T) {
	_, err := Open(context.Background(), nil)
	assert.Error(t, err)
}

func TestOpen_LoadsPersistedSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	pid := f.addProduct(t, "Audit", 500, 18)
	cid := f.addClient(t, "Acme")
	f.addInvoice(t, cid, pid, 2)

	reopened, err := Open(ctx, f.backend)
	require.NoError(t, err)
	assert.Equal(t, f.store.Snapshot(), reopened.Snapshot())
}

func TestProducts_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.addProduct(t, "Consulting", 3500, 18)

	p, err := f.store.Product(id)
	require.NoError(t, err)
	assert.Equal(t, "Consulting", p.Name)
	assert.Equal(t, f.clock.Now(), p.CreatedAt)

	name := "Senior Consulting"
	require.NoError(t, f.store.UpdateProduct(ctx, id, models.ProductPatch{Name: &name}))
	p, _ = f.store.Product(id)
	assert.Equal(t, "Senior Consulting", p.Name)
	assert.Equal(t, 3500.0, p.Price)

	require.NoError(t, f.store.DeleteProduct(ctx, id))
	assert.Empty(t, f.store.Products())
	assert.Equal(t, 3, f.backend.Saves())
}

func TestProducts_NoValidation(t *testing.T) {
	f := newFixture(t)
	id := f.addProduct(t, "", -10, 250)
	p, err := f.store.Product(id)
	require.NoError(t, err)
	assert.Equal(t, -10.0, p.Price)
}

func TestClients_CRUD(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := f.addClient(t, "Globex")

	email := "billing@globex.test"
	require.NoError(t, f.store.UpdateClient(ctx, id, models.ClientPatch{Email: &email}))
	c, err := f.store.Client(id)
	require.NoError(t, err)
	assert.Equal(t, email, c.Email)
	assert.Equal(t, "Globex", c.CompanyName)

	require.NoError(t, f.store.DeleteClient(ctx, id))
	_, err = f.store.Client(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnknownIDs_ReturnNotFoundWithoutSaving(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addProduct(t, "Kept", 1, 0)
	before := f.store.Snapshot()
	saves := f.backend.Saves()

	name := "x"
	errs := []error{
		f.store.UpdateProduct(ctx, "missing", models.ProductPatch{Name: &name}),
		f.store.DeleteProduct(ctx, "missing"),
		f.store.UpdateClient(ctx, "missing", models.ClientPatch{CompanyName: &name}),
		f.store.DeleteClient(ctx, "missing"),
		f.store.UpdateInvoice(ctx, "missing", models.InvoicePatch{Notes: &name}),
		f.store.UpdateInvoiceStatus(ctx, "missing", models.InvoiceStatusSent),
		f.store.DeleteInvoice(ctx, "missing"),
	}
	for i, err := range errs {
		assert.ErrorIs(t, err, ErrNotFound, "call %d", i)
	}
	assert.Equal(t, before, f.store.Snapshot())
	assert.Equal(t, saves, f.backend.Saves())
}

func TestReturnedValuesAreCopies(t *testing.T) {
	f := newFixture(t)
	pid := f.addProduct(t, "Design", 2500, 18)
	cid := f.addClient(t, "Initech")
	f.addInvoice(t, cid, pid, 1)

	products := f.store.Products()
	products[0].Name = "mutated"
	invoices := f.store.Invoices()
	invoices[0].Items[0].Quantity = 99

	p, _ := f.store.Product(pid)
	assert.Equal(t, "Design", p.Name)
	assert.Equal(t, 1, f.store.Invoices()[0].Items[0].Quantity)
}

func TestPersistFailure_KeepsMutationAndReturnsError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("disk full")
	f.backend.FailWith(boom)

	id, err := f.store.AddProduct(context.Background(), models.ProductInput{Name: "Hosting"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "persist snapshot")

	_, err = f.store.Product(id)
	assert.NoError(t, err)
}

func TestMetricsRecorder(t *testing.T) {
	rec := &recorder{ops: map[string]int{}}
	f := newFixture(t, WithMetrics(rec), WithRecentWindow(1))
	pid := f.addProduct(t, "Audit", 100, 0)
	cid := f.addClient(t, "Acme")
	f.addInvoice(t, cid, pid, 1)
	f.addInvoice(t, cid, pid, 1)
	_ = f.store.DeleteClient(context.Background(), "missing")

	assert.Equal(t, 1, rec.ops["add_product:ok"])
	assert.Equal(t, 2, rec.ops["add_invoice:ok"])
	assert.Equal(t, 1, rec.ops["delete_client:error"])
	assert.Equal(t, 1, rec.recent)
	assert.Equal(t, 1, rec.archived)
}

func TestLoadSeedData_Once(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, WithRand(SeedRand(42)))
	f.addProduct(t, "Replaced", 1, 0)

	loaded, err := f.store.LoadSeedData(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.True(t, f.store.Seeded())
	assert.Len(t, f.store.Products(), 6)
	assert.Len(t, f.store.Clients(), 5)
	assert.Len(t, f.store.Invoices(), 15)
	assert.Len(t, f.store.RecentInvoices(), 10)
	assert.Len(t, f.store.ArchivedInvoices(), 5)

	saves := f.backend.Saves()
	loaded, err = f.store.LoadSeedData(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, saves, f.backend.Saves())

	reopened, err := Open(ctx, f.backend)
	require.NoError(t, err)
	loaded, err = reopened.LoadSeedData(ctx)
	require.NoError(t, err)
	assert.False(t, loaded, "seeded flag must survive a reload")
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	pid := f.addProduct(t, "Audit", 100, 18)
	cid := f.addClient(t, "Acme")
	inv := f.addInvoice(t, cid, pid, 2)

	st := f.store.Stats()
	assert.Equal(t, 1, st.InvoicesThisMonth)
	assert.InDelta(t, 236, st.RevenueThisMonth, 1e-9)
	assert.Equal(t, 1, st.PendingInvoices)
	assert.Equal(t, 1, st.TotalClients)
	require.Len(t, st.Latest, 1)
	assert.Equal(t, inv.ID, st.Latest[0].ID)
}
