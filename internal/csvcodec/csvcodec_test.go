package csvcodec_test

import (
	"strings"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/plantworks/facilityops/internal/csvcodec"
)

func TestCSVCodec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CSV Codec Suite")
}

var _ = Describe("Encode", func() {
	It("should quote every body value and leave the header bare", func() {
		rows := []csvcodec.Record{{"id": "r1", "name": "Copper"}}

		out := csvcodec.Encode(rows, []string{"id", "name"})

		lines := strings.Split(out, "\n")
		Expect(lines[0]).To(Equal("id,name"))
		Expect(lines[1]).To(Equal(`"r1","Copper"`))
	})

	It("should double embedded quotes", func() {
		rows := []csvcodec.Record{{"desc": `3.5" drives`}}

		out := csvcodec.Encode(rows, []string{"desc"})

		Expect(out).To(ContainSubstring(`"3.5"" drives"`))
	})

	It("should keep the column count stable when fields are missing", func() {
		rows := []csvcodec.Record{{"id": "r1"}}

		out := csvcodec.Encode(rows, []string{"id", "name", "weight"})

		Expect(strings.Split(out, "\n")[1]).To(Equal(`"r1","",""`))
	})
})

var _ = Describe("Decode", func() {
	It("should round-trip what Encode produced", func() {
		rows := []csvcodec.Record{
			{"id": "r1", "desc": "copper, stripped", "weight": "12.5"},
			{"id": "r2", "desc": `said "done"`, "weight": "0"},
		}
		fields := []string{"id", "desc", "weight"}

		encoded := csvcodec.Encode(rows, fields)
		decoded := csvcodec.Decode(encoded)

		Expect(decoded).To(HaveLen(2))
		Expect(decoded[0]["desc"]).To(Equal("copper, stripped"))
		Expect(decoded[1]["desc"]).To(Equal(`said "done"`))

		// re-encoding the decoded records must reproduce the exact text
		Expect(csvcodec.Encode(decoded, fields)).To(Equal(encoded))
	})

	It("should not split on commas inside quoted segments", func() {
		decoded := csvcodec.Decode("a,b\n\"one, two\",\"three\"")

		Expect(decoded).To(HaveLen(1))
		Expect(decoded[0]["a"]).To(Equal("one, two"))
		Expect(decoded[0]["b"]).To(Equal("three"))
	})

	It("should leave trailing headers unset on short rows", func() {
		decoded := csvcodec.Decode("id,name,weight\n\"r1\",\"Copper\"")

		Expect(decoded).To(HaveLen(1))
		Expect(decoded[0].Has("weight")).To(BeFalse())
	})

	It("should tolerate an unbalanced quote instead of failing", func() {
		decoded := csvcodec.Decode("id,name\n\"r1,broken")

		Expect(decoded).To(HaveLen(1))
		Expect(decoded[0]["id"]).To(Equal("r1,broken"))
	})

	It("should skip blank lines and strip carriage returns", func() {
		decoded := csvcodec.Decode("id\r\n\"r1\"\r\n\r\n\"r2\"\r\n")

		Expect(decoded).To(HaveLen(2))
		Expect(decoded[1]["id"]).To(Equal("r2"))
	})
})

var _ = Describe("Record", func() {
	Describe("Float", func() {
		It("should default to zero for missing or unparseable values", func() {
			rec := csvcodec.Record{"weight": "abc"}

			Expect(rec.Float("weight")).To(BeZero())
			Expect(rec.Float("absent")).To(BeZero())
		})

		It("should trim whitespace before parsing", func() {
			rec := csvcodec.Record{"weight": " 12.5 "}

			Expect(rec.Float("weight")).To(Equal(12.5))
		})
	})
})

var _ = Describe("Filename", func() {
	It("should append today's date stamp", func() {
		name := csvcodec.Filename("WorkLogs")

		Expect(name).To(Equal("WorkLogs_" + time.Now().Format("2006-01-02") + ".csv"))
	})
})
