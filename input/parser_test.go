package input_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chronica/device"
	"github.com/sarchlab/chronica/input"
	valgen "github.com/sarchlab/chronica/util"
)

const capture = "Before: [3, 2, 1, 1]\n" +
	"9 2 1 2\n" +
	"After:  [3, 2, 2, 1]\n" +
	"\n" +
	"Before: [9, 9, 9, 9]\n" +
	"0 5 0 2\n" +
	"After:  [9, 9, 5, 9]\n" +
	"\n" +
	"9 2 1 2\n" +
	"0 7 0 0\n"

var _ = Describe("Parse", func() {
	It("should parse a complete capture", func() {
		in, err := input.Parse(capture)

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Samples).To(Equal([]device.Sample{
			{
				Before: device.Registers{3, 2, 1, 1},
				Instruction: device.UnknownInstruction{
					Opcode: 9, A: 2, B: 1, C: 2,
				},
				After: device.Registers{3, 2, 2, 1},
			},
			{
				Before: device.Registers{9, 9, 9, 9},
				Instruction: device.UnknownInstruction{
					Opcode: 0, A: 5, B: 0, C: 2,
				},
				After: device.Registers{9, 9, 5, 9},
			},
		}))
		Expect(in.Program).To(Equal([]device.UnknownInstruction{
			{Opcode: 9, A: 2, B: 1, C: 2},
			{Opcode: 0, A: 7, B: 0, C: 0},
		}))
	})

	It("should render back the canonical text", func() {
		in, err := input.Parse(capture)

		Expect(err).ToNot(HaveOccurred())
		Expect(in.String()).To(Equal(capture))
	})

	It("should round-trip generated inputs", func() {
		val := valgen.MakeRandGen(1, 1000)
		op := valgen.MakeRandGen(2, device.NumOpcodes)

		in := &input.Input{}
		for i := 0; i < 20; i++ {
			in.Samples = append(in.Samples, device.Sample{
				Before: device.Registers{val(), val(), val(), val()},
				Instruction: device.UnknownInstruction{
					Opcode: op(), A: val(), B: val(), C: val(),
				},
				After: device.Registers{val(), val(), val(), val()},
			})
			in.Program = append(in.Program, device.UnknownInstruction{
				Opcode: op(), A: val(), B: val(), C: val(),
			})
		}

		parsed, err := input.Parse(in.String())

		Expect(err).ToNot(HaveOccurred())
		Expect(parsed).To(Equal(in))
	})

	It("should accept an empty text", func() {
		in, err := input.Parse("")

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Samples).To(BeEmpty())
		Expect(in.Program).To(BeEmpty())
	})

	It("should accept samples without a blank line before the program", func() {
		in, err := input.Parse("Before: [0, 0, 0, 0]\n" +
			"0 0 0 0\n" +
			"After: [0, 0, 0, 0]\n" +
			"1 2 3 0\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Samples).To(HaveLen(1))
		Expect(in.Program).To(Equal([]device.UnknownInstruction{
			{Opcode: 1, A: 2, B: 3, C: 0},
		}))
	})

	It("should accept a capture with samples only", func() {
		in, err := input.Parse("Before: [0, 0, 0, 0]\n" +
			"0 0 0 0\n" +
			"After: [0, 0, 0, 0]\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Samples).To(HaveLen(1))
		Expect(in.Program).To(BeEmpty())
	})

	It("should fold case in keywords", func() {
		in, err := input.Parse("bEfOrE: [0, 0, 0, 0]\n" +
			"0 0 0 0\n" +
			"AFTER: [0, 0, 0, 0]\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Samples).To(HaveLen(1))
	})

	It("should parse the classic single-sample text", func() {
		in, err := input.Parse("Before: [3, 2, 1, 1]\n" +
			"9 2 1 2\n" +
			"After:  [3, 2, 2, 1]\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Samples).To(Equal([]device.Sample{{
			Before: device.Registers{3, 2, 1, 1},
			Instruction: device.UnknownInstruction{
				Opcode: 9, A: 2, B: 1, C: 2,
			},
			After: device.Registers{3, 2, 2, 1},
		}}))
		Expect(in.Program).To(BeEmpty())
	})

	It("should accept multiple spaces between instruction fields", func() {
		in, err := input.Parse("1  2   3 4\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(in.Program).To(Equal([]device.UnknownInstruction{
			{Opcode: 1, A: 2, B: 3, C: 4},
		}))
	})

	It("should reject an instruction with too few fields", func() {
		_, err := input.Parse("1 2 3\n")

		Expect(err).To(HaveOccurred())
	})

	It("should reject an instruction with too many fields", func() {
		_, err := input.Parse("1 2 3 4 5\n")

		Expect(err).To(HaveOccurred())
	})

	It("should reject an instruction without separating spaces", func() {
		_, err := input.Parse("6011\n")

		Expect(err).To(HaveOccurred())
	})

	It("should reject tabs as field separators", func() {
		_, err := input.Parse("6\t0 1 1\n")

		Expect(err).To(HaveOccurred())
	})

	It("should reject a missing trailing newline", func() {
		_, err := input.Parse("1 2 3 0")

		synErr := asSyntaxError(err)
		Expect(synErr.Expected).To(ContainElement("newline"))
	})

	It("should reject carriage returns", func() {
		_, err := input.Parse("1 2 3 0\r\n")

		synErr := asSyntaxError(err)
		Expect(synErr.Expected).To(ContainElement("newline"))
	})
})

var _ = Describe("ParseSample", func() {
	It("should parse a single block", func() {
		s, err := input.ParseSample("Before: [3, 2, 1, 1]\n" +
			"9 2 1 2\n" +
			"After:  [3, 2, 2, 1]\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(*s).To(Equal(device.Sample{
			Before: device.Registers{3, 2, 1, 1},
			Instruction: device.UnknownInstruction{
				Opcode: 9, A: 2, B: 1, C: 2,
			},
			After: device.Registers{3, 2, 2, 1},
		}))
	})

	It("should tolerate a missing trailing newline", func() {
		_, err := input.ParseSample("Before: [0, 0, 0, 0]\n" +
			"0 0 0 0\n" +
			"After: [0, 0, 0, 0]")

		Expect(err).ToNot(HaveOccurred())
	})

	It("should reject trailing content", func() {
		_, err := input.ParseSample("Before: [0, 0, 0, 0]\n" +
			"0 0 0 0\n" +
			"After: [0, 0, 0, 0]\n" +
			"junk\n")

		Expect(err).To(HaveOccurred())
	})

	DescribeTable("register list spacing",
		func(regs string) {
			s, err := input.ParseSample("Before: " + regs + "\n" +
				"0 0 0 0\n" +
				"After: [0, 0, 0, 0]\n")

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Before).To(Equal(device.Registers{0, 2, 0, 2}))
		},
		Entry("no spaces", "[0,2,0,2]"),
		Entry("single spaces", "[0, 2, 0, 2]"),
		Entry("mixed spaces", "[0,  2,0, 2]"),
		Entry("space before bracket", "[0, 2, 0, 2 ]"),
	)

	DescribeTable("malformed register lists",
		func(regs string) {
			_, err := input.ParseSample("Before: " + regs + "\n" +
				"0 0 0 0\n" +
				"After: [0, 0, 0, 0]\n")

			Expect(err).To(HaveOccurred())
		},
		Entry("too few values", "[0, 2, 0]"),
		Entry("too many values", "[0, 2, 0, 2, 0]"),
		Entry("missing comma", "[0 2 0 2]"),
		Entry("missing bracket", "[0, 2, 0, 2"),
		Entry("negative value", "[-1, 2, 0, 2]"),
	)
})

func asSyntaxError(err error) *input.SyntaxError {
	GinkgoHelper()

	var synErr *input.SyntaxError
	Expect(errors.As(err, &synErr)).To(BeTrue())
	return synErr
}
