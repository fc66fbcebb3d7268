package store_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/store"
)

func TestStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Store Suite")
}

// failingSubstrate wraps a MemorySubstrate and fails writes on demand.
type failingSubstrate struct {
	*store.MemorySubstrate
	putError error
}

func (f *failingSubstrate) Put(name string, doc []byte) error {
	if f.putError != nil {
		return f.putError
	}
	return f.MemorySubstrate.Put(name, doc)
}

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var _ = Describe("Store", func() {
	var (
		st     *store.Store
		logger *slog.Logger
	)

	BeforeEach(func() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		st = store.New(store.NewMemorySubstrate(), logger)
	})

	Describe("Load", func() {
		Context("when the collection has never been written", func() {
			It("should persist the seed and return it", func() {
				seed := []testRecord{{ID: "r1", Name: "first"}}

				var out []testRecord
				err := st.Load(store.CollectionInventory, &out, seed)

				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal(seed))
			})

			It("should return the same data on the first and every later read", func() {
				seed := []testRecord{{ID: "r1", Name: "first"}}

				var first []testRecord
				Expect(st.Load(store.CollectionInventory, &first, seed)).To(Succeed())

				// A later read with a different seed must still see the
				// originally persisted one.
				var second []testRecord
				Expect(st.Load(store.CollectionInventory, &second, []testRecord{})).To(Succeed())
				Expect(second).To(Equal(first))
			})
		})

		Context("when the collection was saved before", func() {
			It("should ignore the seed and return the saved data", func() {
				saved := []testRecord{{ID: "r2", Name: "saved"}}
				Expect(st.Save(store.CollectionLogs, saved)).To(Succeed())

				var out []testRecord
				err := st.Load(store.CollectionLogs, &out, []testRecord{{ID: "seed"}})

				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal(saved))
			})
		})
	})

	Describe("Save", func() {
		Context("when the substrate rejects the write", func() {
			It("should surface the error to the caller", func() {
				failing := &failingSubstrate{
					MemorySubstrate: store.NewMemorySubstrate(),
					putError:        errors.New("disk full"),
				}
				st = store.New(failing, logger)

				err := st.Save(store.CollectionLogs, []testRecord{{ID: "r1"}})

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("logs"))
			})
		})
	})

	Describe("Backup and Restore", func() {
		It("should round-trip every written collection", func() {
			users := []testRecord{{ID: "u1", Name: "Root"}}
			logs := []testRecord{{ID: "l1", Name: "dismantling"}}
			Expect(st.Save(store.CollectionUsers, users)).To(Succeed())
			Expect(st.Save(store.CollectionLogs, logs)).To(Succeed())

			data, err := st.Backup()
			Expect(err).ToNot(HaveOccurred())

			fresh := store.New(store.NewMemorySubstrate(), logger)
			Expect(fresh.Restore(data)).To(Succeed())

			var gotUsers, gotLogs []testRecord
			Expect(fresh.Load(store.CollectionUsers, &gotUsers, []testRecord{})).To(Succeed())
			Expect(fresh.Load(store.CollectionLogs, &gotLogs, []testRecord{})).To(Succeed())
			Expect(gotUsers).To(Equal(users))
			Expect(gotLogs).To(Equal(logs))
		})

		It("should stamp the document with a version and timestamp", func() {
			data, err := st.Backup()
			Expect(err).ToNot(HaveOccurred())

			var doc map[string]json.RawMessage
			Expect(json.Unmarshal(data, &doc)).To(Succeed())
			Expect(doc).To(HaveKey("version"))
			Expect(doc).To(HaveKey("timestamp"))
			Expect(string(doc["version"])).To(ContainSubstring(store.BackupVersion))
		})

		It("should omit collections that were never written", func() {
			Expect(st.Save(store.CollectionUsers, []testRecord{{ID: "u1"}})).To(Succeed())

			data, err := st.Backup()
			Expect(err).ToNot(HaveOccurred())

			var doc map[string]json.RawMessage
			Expect(json.Unmarshal(data, &doc)).To(Succeed())
			Expect(doc).To(HaveKey(store.CollectionUsers))
			Expect(doc).ToNot(HaveKey(store.CollectionVisitors))
		})

		Context("when the backup document is malformed", func() {
			It("should refuse without touching any collection", func() {
				existing := []testRecord{{ID: "keep"}}
				Expect(st.Save(store.CollectionUsers, existing)).To(Succeed())

				err := st.Restore([]byte(`{"users": [truncated`))

				Expect(err).To(HaveOccurred())

				var out []testRecord
				Expect(st.Load(store.CollectionUsers, &out, []testRecord{})).To(Succeed())
				Expect(out).To(Equal(existing))
			})
		})

		Context("when the document covers only some collections", func() {
			It("should leave the absent collections untouched", func() {
				kept := []testRecord{{ID: "visitor-kept"}}
				Expect(st.Save(store.CollectionVisitors, kept)).To(Succeed())

				doc := map[string]interface{}{
					store.CollectionUsers: []testRecord{{ID: "u-new"}},
				}
				data, err := json.Marshal(doc)
				Expect(err).ToNot(HaveOccurred())

				Expect(st.Restore(data)).To(Succeed())

				var users, visitors []testRecord
				Expect(st.Load(store.CollectionUsers, &users, []testRecord{})).To(Succeed())
				Expect(st.Load(store.CollectionVisitors, &visitors, []testRecord{})).To(Succeed())
				Expect(users).To(HaveLen(1))
				Expect(users[0].ID).To(Equal("u-new"))
				Expect(visitors).To(Equal(kept))
			})
		})
	})

	Describe("Reset", func() {
		It("should drop every collection", func() {
			Expect(st.Save(store.CollectionUsers, []testRecord{{ID: "u1"}})).To(Succeed())

			Expect(st.Reset()).To(Succeed())

			var out []testRecord
			seed := []testRecord{{ID: "reseeded"}}
			Expect(st.Load(store.CollectionUsers, &out, seed)).To(Succeed())
			Expect(out).To(Equal(seed))
		})
	})
})
