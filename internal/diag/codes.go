package diag

// Macro preprocessor errors.
const (
	MCLineOverflow     Code = "MC001"
	MCMissingName      Code = "MC002"
	MCNameTooLong      Code = "MC003"
	MCNameInvalid      Code = "MC004"
	MCNameReserved     Code = "MC005"
	MCNameDuplicate    Code = "MC006"
	MCMissingSpace     Code = "MC007"
	MCTrailingContent  Code = "MC008"
	MCUnterminated     Code = "MC009"
	MCFileTooLong      Code = "MC010"
)

// Parsing / validation errors.
const (
	ASUnknownMnemonic  Code = "AS001"
	ASInvalidLabel     Code = "AS002"
	ASOperandCount     Code = "AS003"
	ASIllegalMode      Code = "AS004"
	ASDuplicateLabel   Code = "AS005"
	ASExtraComma       Code = "AS006"
	ASEmptyOperand     Code = "AS007"
	ASUnknownSymbol    Code = "AS008"
	ASSizeBound        Code = "AS009"
	ASInvalidImmediate Code = "AS010"
	ASEntryExternal    Code = "AS011"
	ASOffsetRange       Code = "AS050"
)

// Stage failures.
const (
	ASMacroStageFailed Code = "AS101"
	ASPassOneFailed    Code = "AS102"
)

// Matrix operand errors.
const (
	ASMatrixBrackets     Code = "AS110"
	ASMatrixEmptyLabel   Code = "AS111"
	ASMatrixLabelTooLong Code = "AS112"
	ASMatrixBadIndex     Code = "AS113"
	ASMatrixJunk         Code = "AS114"
)

// Directive-parsing errors.
const (
	ASDataLeadingComma  Code = "AS301"
	ASDataInvalidNumber Code = "AS302"
	ASDataOutOfRange    Code = "AS303"
	ASDataMissingComma  Code = "AS304"
	ASDataTrailingComma Code = "AS305"

	ASStringMissingQuote Code = "AS306"
	ASStringUnterminated Code = "AS307"

	ASMatDimInvalid      Code = "AS308"
	ASMatOverflow        Code = "AS309"
	ASMatMissingValue    Code = "AS310"
	ASMatInvalidNumber   Code = "AS311"
	ASMatValueOutOfRange Code = "AS312"
	ASMatTooManyInit     Code = "AS313"
	ASMatUnexpectedChar  Code = "AS314"
	ASMatTrailingComma   Code = "AS315"

	ASEntryMissingLabel Code = "AS316"
	ASEntryLabelTooLong Code = "AS317"
	ASEntryInvalidName  Code = "AS318"
	ASEntryTrailing     Code = "AS319"
	ASExternMissingLabel Code = "AS320"
	ASExternTrailing     Code = "AS321"
	ASExternLabelTooLong Code = "AS322"
	ASExternInvalidName  Code = "AS323"
)
