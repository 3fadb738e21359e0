// Package qsim is an in-memory simulator of quantum registers: pure states
// held as state-vectors and mixed states held as density matrices, driven by
// gates, measurements, decoherence channels and Pauli-Hamiltonian evolution.
//
// Everything is organized under five subpackages:
//
//	env/     simulation environment: seeded RNG, worker settings, zap logger,
//	         Prometheus metrics, YAML configuration
//	matrix/  2x2, 4x4 and 2^n x 2^n complex operators, unitarity and
//	         Kraus-map (CPTP) validators, Kron and superoperators
//	pauli/   Pauli codes and real-weighted Pauli Hamiltonians, with a
//	         plain-text file format
//	qasm/    OPENQASM 2.0 recorder mirroring register operations
//	qureg/   the Register type and every operation on it
//
// Quick example, a Bell pair:
//
//	e, _ := env.New(env.WithSeed(42))
//	defer e.Close()
//	q, _ := qureg.New(e, 2)
//	defer q.Close()
//	_ = q.Hadamard(0)
//	_ = q.ControlledNot(0, 1)
//	m0, _ := q.Measure(0)
//	m1, _ := q.Measure(1) // always equals m0
//
// Amplitude loops split across Env.Workers goroutines once a register holds
// more than Env.ParallelThreshold amplitudes; results do not depend on the
// split.
//
//	go get github.com/katalvlaran/qsim
package qsim
