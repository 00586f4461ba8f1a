package shader

// SceneVertex transforms vertex-coloured meshes and passes view distance for fog.
const SceneVertex = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform vec3 uEye;

out vec3 vNormal;
out vec3 vColor;
out float vDistance;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vNormal = normalize(transpose(inverse(mat3(uModel))) * aNormal);
    vColor = aColor;
    vDistance = length(world.xyz - uEye);
    gl_Position = uViewProj * world;
}
`

// SceneFragment is Lambert shading with ambient fill and linear fog.
const SceneFragment = `
#version 410 core

in vec3 vNormal;
in vec3 vColor;
in float vDistance;

uniform vec3 uLightDir;
uniform float uAmbient;
uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;

out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), normalize(uLightDir)), 0.0);
    vec3 lit = vColor * (uAmbient + (1.0 - uAmbient) * diffuse);
    float fog = clamp((vDistance - uFogNear) / max(uFogFar - uFogNear, 0.0001), 0.0, 1.0);
    FragColor = vec4(mix(lit, uFogColor, fog), 1.0);
}
`
