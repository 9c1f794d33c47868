/*package fluid advances a 2D incompressible "stable fluids" approximation one
timestep at a time.

A State owns every buffer needed for a run: the velocity field (u, v), the
force buffers (u0, v0) which double as projection scratch space, the smoke
density d with its scratch buffer d0, and the injected density source. All
buffers are laid out on a geom.Grid with a one cell ghost border which the
boundary enforcer fills after every sweep so that the domain is a closed box.

Each frame, the caller writes forces and sources with InjectForce and
InjectSource and then calls Step (or VelocityStep followed by DensityStep).
Injected values are consumed by exactly one step.
*/
package fluid
