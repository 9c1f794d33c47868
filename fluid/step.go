package fluid

// VelocityStep advances the velocity field by dt with viscosity visc,
// consuming the forces written by InjectForce.
//
// dt must already be in (0, MaxTimestep]; invalid arguments are rejected
// with ErrInvalidCoefficient before anything is modified.
func (s *State) VelocityStep(visc, dt float32) error {
	if err := checkCoefficient("VelocityStep", "visc", visc); err != nil {
		return err
	} else if err := checkTimestep("VelocityStep", dt, s.params.MaxTimestep); err != nil {
		return err
	}

	g, p := s.g, s.params
	w := g.Stride

	addSource(s.u, s.u0, dt, w, p.Workers)
	addSource(s.v, s.v0, dt, w, p.Workers)

	s.u0, s.u = s.u, s.u0
	Diffuse(g, XVelocity, s.u, s.u0, visc, dt, p.Iterations)
	s.v0, s.v = s.v, s.v0
	Diffuse(g, YVelocity, s.v, s.v0, visc, dt, p.Iterations)

	project(g, s.u, s.v, s.u0, s.v0, p.Iterations, p.Workers)

	// Advect through the projected field, which now sits in u0, v0.
	s.u0, s.u = s.u, s.u0
	s.v0, s.v = s.v, s.v0
	advect(g, XVelocity, s.u, s.u0, s.u0, s.v0, dt, p.Workers)
	advect(g, YVelocity, s.v, s.v0, s.u0, s.v0, dt, p.Workers)

	project(g, s.u, s.v, s.u0, s.v0, p.Iterations, p.Workers)

	dissipate(s.v, p.VelocityDissipation, w, p.Workers)
	dissipate(s.u, p.VelocityDissipation, w, p.Workers)

	fill(s.u0, 0)
	fill(s.v0, 0)
	return nil
}

// DensityStep advances the density by dt with diffusion rate diff through
// the current velocity field, consuming the sources written by
// InjectSource. Arguments are checked as in VelocityStep.
func (s *State) DensityStep(diff, dt float32) error {
	if err := checkCoefficient("DensityStep", "diff", diff); err != nil {
		return err
	} else if err := checkTimestep("DensityStep", dt, s.params.MaxTimestep); err != nil {
		return err
	}

	g, p := s.g, s.params
	w := g.Stride

	addSource(s.d, s.src, dt, w, p.Workers)
	fill(s.src, 0)

	s.d0, s.d = s.d, s.d0
	Diffuse(g, Scalar, s.d, s.d0, diff, dt, p.Iterations)
	s.d0, s.d = s.d, s.d0
	advect(g, Scalar, s.d, s.d0, s.u, s.v, dt, p.Workers)

	dissipate(s.d, p.DensityDissipation, w, p.Workers)
	return nil
}

// Step runs one full frame: dt is clamped to MaxTimestep, then the velocity
// step runs followed by the density step.
func (s *State) Step(visc, diff, dt float32) error {
	if dt > s.params.MaxTimestep {
		dt = s.params.MaxTimestep
	}
	if err := checkCoefficient("Step", "diff", diff); err != nil {
		return err
	}
	if err := s.VelocityStep(visc, dt); err != nil {
		return err
	}
	return s.DensityStep(diff, dt)
}
