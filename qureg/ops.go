// SPDX-License-Identifier: MIT

package qureg

// Operation names used in error wrapping, logs and the qsim_operations_total label.
const (
	opNew           = "New"
	opNewDensity    = "NewDensity"
	opGetAmp        = "GetAmp"
	opGetDensityAmp = "GetDensityAmp"

	opInitZeroState      = "InitZeroState"
	opInitPlusState      = "InitPlusState"
	opInitBlankState     = "InitBlankState"
	opInitDebugState     = "InitDebugState"
	opInitClassicalState = "InitClassicalState"
	opInitPureState      = "InitPureState"
	opInitStateFromAmps  = "InitStateFromAmps"
	opSetAmps            = "SetAmps"
	opSetDensityAmps     = "SetDensityAmps"
	opClone              = "Clone"
	opSetWeighted        = "SetWeighted"

	opPhaseShift                = "PhaseShift"
	opControlledPhaseShift      = "ControlledPhaseShift"
	opMultiControlledPhaseShift = "MultiControlledPhaseShift"
	opControlledPhaseFlip       = "ControlledPhaseFlip"
	opMultiControlledPhaseFlip  = "MultiControlledPhaseFlip"
	opSGate                     = "SGate"
	opTGate                     = "TGate"

	opPauliX                       = "PauliX"
	opPauliY                       = "PauliY"
	opPauliZ                       = "PauliZ"
	opHadamard                     = "Hadamard"
	opControlledNot                = "ControlledNot"
	opMultiQubitNot                = "MultiQubitNot"
	opMultiControlledMultiQubitNot = "MultiControlledMultiQubitNot"
	opControlledPauliY             = "ControlledPauliY"

	opCompactUnitary   = "CompactUnitary"
	opUnitary          = "Unitary"
	opRotateX          = "RotateX"
	opRotateY          = "RotateY"
	opRotateZ          = "RotateZ"
	opRotateAroundAxis = "RotateAroundAxis"

	opControlledRotateX          = "ControlledRotateX"
	opControlledRotateY          = "ControlledRotateY"
	opControlledRotateZ          = "ControlledRotateZ"
	opControlledRotateAroundAxis = "ControlledRotateAroundAxis"
	opControlledCompactUnitary   = "ControlledCompactUnitary"
	opControlledUnitary          = "ControlledUnitary"

	opMultiControlledUnitary      = "MultiControlledUnitary"
	opMultiStateControlledUnitary = "MultiStateControlledUnitary"
	opSwapGate                    = "SwapGate"
	opSqrtSwapGate                = "SqrtSwapGate"

	opMultiRotateZ                    = "MultiRotateZ"
	opMultiRotatePauli                = "MultiRotatePauli"
	opMultiControlledMultiRotateZ     = "MultiControlledMultiRotateZ"
	opMultiControlledMultiRotatePauli = "MultiControlledMultiRotatePauli"

	opTwoQubitUnitary                  = "TwoQubitUnitary"
	opControlledTwoQubitUnitary        = "ControlledTwoQubitUnitary"
	opMultiControlledTwoQubitUnitary   = "MultiControlledTwoQubitUnitary"
	opMultiQubitUnitary                = "MultiQubitUnitary"
	opControlledMultiQubitUnitary      = "ControlledMultiQubitUnitary"
	opMultiControlledMultiQubitUnitary = "MultiControlledMultiQubitUnitary"

	opApplyMatrix2                = "ApplyMatrix2"
	opApplyMatrix4                = "ApplyMatrix4"
	opApplyMatrixN                = "ApplyMatrixN"
	opApplyMultiControlledMatrixN = "ApplyMultiControlledMatrixN"

	opCalcProbOfOutcome     = "CalcProbOfOutcome"
	opCalcProbOfAllOutcomes = "CalcProbOfAllOutcomes"
	opCollapseToOutcome     = "CollapseToOutcome"
	opApplyProjector        = "ApplyProjector"
	opMeasure               = "Measure"

	opMixDephasing            = "MixDephasing"
	opMixTwoQubitDephasing    = "MixTwoQubitDephasing"
	opMixDepolarising         = "MixDepolarising"
	opMixTwoQubitDepolarising = "MixTwoQubitDepolarising"
	opMixDamping              = "MixDamping"
	opMixPauli                = "MixPauli"
	opMixDensityMatrix        = "MixDensityMatrix"

	opMixKrausMap                = "MixKrausMap"
	opMixTwoQubitKrausMap        = "MixTwoQubitKrausMap"
	opMixMultiQubitKrausMap      = "MixMultiQubitKrausMap"
	opMixNonTPKrausMap           = "MixNonTPKrausMap"
	opMixNonTPTwoQubitKrausMap   = "MixNonTPTwoQubitKrausMap"
	opMixNonTPMultiQubitKrausMap = "MixNonTPMultiQubitKrausMap"

	opCalcPurity                 = "CalcPurity"
	opCalcFidelity               = "CalcFidelity"
	opCalcInnerProduct           = "CalcInnerProduct"
	opCalcDensityInnerProduct    = "CalcDensityInnerProduct"
	opCalcHilbertSchmidtDistance = "CalcHilbertSchmidtDistance"

	opCalcExpecPauliProd  = "CalcExpecPauliProd"
	opCalcExpecPauliSum   = "CalcExpecPauliSum"
	opCalcExpecPauliHamil = "CalcExpecPauliHamil"
	opApplyPauliSum       = "ApplyPauliSum"
	opApplyPauliHamil     = "ApplyPauliHamil"

	opApplyPhaseFunc                    = "ApplyPhaseFunc"
	opApplyPhaseFuncOverrides           = "ApplyPhaseFuncOverrides"
	opApplyMultiVarPhaseFunc            = "ApplyMultiVarPhaseFunc"
	opApplyMultiVarPhaseFuncOverrides   = "ApplyMultiVarPhaseFuncOverrides"
	opApplyNamedPhaseFunc               = "ApplyNamedPhaseFunc"
	opApplyNamedPhaseFuncOverrides      = "ApplyNamedPhaseFuncOverrides"
	opApplyParamNamedPhaseFunc          = "ApplyParamNamedPhaseFunc"
	opApplyParamNamedPhaseFuncOverrides = "ApplyParamNamedPhaseFuncOverrides"

	opApplyQFT            = "ApplyQFT"
	opApplyFullQFT        = "ApplyFullQFT"
	opApplyTrotterCircuit = "ApplyTrotterCircuit"

	opWriteRecordedQASMToFile = "WriteRecordedQASMToFile"
	opReportState             = "ReportState"
	opReportStateToScreen     = "ReportStateToScreen"
	opReportQuregParams       = "ReportQuregParams"
)
