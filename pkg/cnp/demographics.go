package cnp

// ClassifySex derives the demographic class from the leading digit: 9 marks
// a foreign citizen, otherwise even digits encode female and odd male.
// Pure, total, deterministic.
func ClassifySex(leading int) Sex {
	if leading == 9 {
		return SexForeign
	}
	if leading%2 == 0 {
		return SexFemale
	}
	return SexMale
}
